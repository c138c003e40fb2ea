package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hackbridge/hackathon-backend/internal/config"
	"github.com/hackbridge/hackathon-backend/internal/handlers"
	"github.com/hackbridge/hackathon-backend/internal/middleware"
	"github.com/hackbridge/hackathon-backend/internal/repositories/fallback"
)

// HandlerDependencies bundles the handlers the router wires up
type HandlerDependencies struct {
	HackathonHandler   *handlers.HackathonHandler
	ParticipantHandler *handlers.ParticipantHandler
	PaymentHandler     *handlers.PaymentHandler
	SubmissionHandler  *handlers.SubmissionHandler
	StorageController  *fallback.Controller
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		// Health check reports the storage mode so operators can see a
		// degraded process
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":      "ok",
				"storageMode": deps.StorageController.Mode(),
			})
		})

		// Hackathon browsing
		public.GET("/hackathons", deps.HackathonHandler.GetAllHackathons)
		public.GET("/hackathons/:id", deps.HackathonHandler.GetHackathonByID)
		public.GET("/hackathons/:id/analytics", deps.SubmissionHandler.Analytics)

		// Participant lifecycle
		public.POST("/hackathons/:id/participants", deps.ParticipantHandler.Register)
		public.GET("/hackathons/:id/participants", deps.ParticipantHandler.GetParticipants)
		public.DELETE("/hackathons/:id/participants/:participantId", deps.ParticipantHandler.Withdraw)
		public.POST("/hackathons/:id/submit-project", deps.SubmissionHandler.SubmitProject)

		// Payment flow
		public.POST("/payments/create/:hackathonId/:participantId", deps.PaymentHandler.CreateOrder)
		public.POST("/payments/verify", deps.PaymentHandler.VerifyPayment)
	}

	// Organizer routes
	organizer := router.Group("/api/v1")
	organizer.Use(middleware.JWTAuthMiddleware(cfg))
	{
		organizer.POST("/hackathons", deps.HackathonHandler.CreateHackathon)
		organizer.DELETE("/hackathons/:id", deps.HackathonHandler.DeleteHackathon)
		organizer.PUT("/hackathons/:id/payment-details", deps.HackathonHandler.UpdatePaymentDetails)
		organizer.POST("/hackathons/:id/evaluate-project", deps.SubmissionHandler.EvaluateProject)
		organizer.POST("/hackathons/:id/rank-projects", deps.SubmissionHandler.RankProjects)
	}

	return router
}
