package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hackbridge/hackathon-backend/api/routes"
	"github.com/hackbridge/hackathon-backend/internal/config"
	"github.com/hackbridge/hackathon-backend/internal/handlers"
	"github.com/hackbridge/hackathon-backend/internal/repositories"
	"github.com/hackbridge/hackathon-backend/internal/repositories/fallback"
	"github.com/hackbridge/hackathon-backend/internal/repositories/memory"
	mongorepo "github.com/hackbridge/hackathon-backend/internal/repositories/mongodb"
	"github.com/hackbridge/hackathon-backend/internal/services"
	"github.com/hackbridge/hackathon-backend/pkg/gemini"
	"github.com/hackbridge/hackathon-backend/pkg/mongodb"
	"github.com/hackbridge/hackathon-backend/pkg/razorpay"
)

func main() {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to MongoDB. A connection failure does not abort the process:
	// the store starts in fallback mode with the fixed seed set and every
	// write stays volatile until restart.
	memHackathons := memory.NewHackathonRepository()
	memPayments := memory.NewPaymentRepository()

	var durableHackathons repositories.HackathonRepository
	var durablePayments repositories.PaymentRepository

	mode := fallback.ModeDurable
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Printf("MongoDB unavailable, starting in fallback mode: %v", err)
		mode = fallback.ModeFallback
		memHackathons.Seed(memory.SeedHackathons())
	} else {
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Printf("Error disconnecting from MongoDB: %v", err)
			}
		}()
		db := mongoClient.Database(cfg.MongoDB.Database)
		durableHackathons = mongorepo.NewHackathonRepository(db)
		durablePayments = mongorepo.NewPaymentRepository(db)
	}

	// The fallback controller is the sole storage entry point for every
	// service; nothing below talks to the durable store directly
	ctl := fallback.NewController(mode)
	hackathonStore := fallback.NewHackathonStore(ctl, durableHackathons, memHackathons)
	paymentStore := fallback.NewPaymentStore(ctl, durablePayments, memPayments)

	// External collaborators. Missing credentials leave them unconfigured;
	// the respective operations fail fast instead of crashing the process.
	gateway := razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	if !gateway.Configured() {
		log.Println("Razorpay credentials not set; payment operations will be rejected")
	}
	evaluator := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if !evaluator.Configured() {
		log.Println("Gemini API key not set; evaluation operations will be rejected")
	}

	// Initialize services
	hackathonService := services.NewHackathonService(hackathonStore)
	registrationService := services.NewRegistrationService(hackathonStore)
	paymentService := services.NewPaymentService(hackathonStore, paymentStore, gateway, cfg.Razorpay.KeyID)
	submissionService := services.NewSubmissionService(hackathonStore, evaluator)

	// Initialize handlers
	handlerDeps := routes.HandlerDependencies{
		HackathonHandler:   handlers.NewHackathonHandler(hackathonService),
		ParticipantHandler: handlers.NewParticipantHandler(registrationService),
		PaymentHandler:     handlers.NewPaymentHandler(paymentService),
		SubmissionHandler:  handlers.NewSubmissionHandler(submissionService),
		StorageController:  ctl,
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s (storage mode: %s)", cfg.Server.Port, ctl.Mode())

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
