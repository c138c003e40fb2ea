package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackbridge/hackathon-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionHandler handles submission, evaluation, ranking and analytics
// HTTP requests
type SubmissionHandler struct {
	submissionService services.SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler
func NewSubmissionHandler(submissionService services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// SubmitProject handles POST /hackathons/:id/submit-project
func (h *SubmissionHandler) SubmitProject(c *gin.Context) {
	hackathonID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hackathon ID format", "code": "VALIDATION_ERROR"})
		return
	}

	var req struct {
		ParticipantID      string `json:"participantId" binding:"required"`
		GithubLink         string `json:"githubLink" binding:"required"`
		ProjectDescription string `json:"projectDescription"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}
	participantID, err := primitive.ObjectIDFromHex(req.ParticipantID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID format", "code": "VALIDATION_ERROR"})
		return
	}

	participant, err := h.submissionService.SubmitProject(c, hackathonID, participantID, req.GithubLink, req.ProjectDescription)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participant)
}

// EvaluateProject handles POST /hackathons/:id/evaluate-project
func (h *SubmissionHandler) EvaluateProject(c *gin.Context) {
	hackathonID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hackathon ID format", "code": "VALIDATION_ERROR"})
		return
	}

	var req struct {
		ParticipantID string `json:"participantId" binding:"required"`
		UserID        string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}
	participantID, err := primitive.ObjectIDFromHex(req.ParticipantID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID format", "code": "VALIDATION_ERROR"})
		return
	}

	evaluation, err := h.submissionService.EvaluateProject(c, hackathonID, participantID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, evaluation)
}

// RankProjects handles POST /hackathons/:id/rank-projects
func (h *SubmissionHandler) RankProjects(c *gin.Context) {
	hackathonID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hackathon ID format", "code": "VALIDATION_ERROR"})
		return
	}

	ranked, err := h.submissionService.RankProjects(c, hackathonID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ranking completed", "ranked": ranked})
}

// Analytics handles GET /hackathons/:id/analytics
func (h *SubmissionHandler) Analytics(c *gin.Context) {
	hackathonID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hackathon ID format", "code": "VALIDATION_ERROR"})
		return
	}

	analytics, err := h.submissionService.Analytics(c, hackathonID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}
