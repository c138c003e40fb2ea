package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackbridge/hackathon-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParticipantHandler handles registration and withdrawal HTTP requests
type ParticipantHandler struct {
	registrationService services.RegistrationService
}

// NewParticipantHandler creates a new ParticipantHandler
func NewParticipantHandler(registrationService services.RegistrationService) *ParticipantHandler {
	return &ParticipantHandler{registrationService: registrationService}
}

// Register handles POST /hackathons/:id/participants
func (h *ParticipantHandler) Register(c *gin.Context) {
	hackathonID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hackathon ID format", "code": "VALIDATION_ERROR"})
		return
	}

	var req struct {
		ID         string `json:"id"`
		UserID     string `json:"userId" binding:"required"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		University string `json:"university"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}

	input := services.RegistrationInput{
		UserID:     req.UserID,
		Name:       req.Name,
		Email:      req.Email,
		University: req.University,
	}
	if req.ID != "" {
		id, err := primitive.ObjectIDFromHex(req.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID format", "code": "VALIDATION_ERROR"})
			return
		}
		input.ID = id
	}

	result, err := h.registrationService.Register(c, hackathonID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Withdraw handles DELETE /hackathons/:id/participants/:participantId
func (h *ParticipantHandler) Withdraw(c *gin.Context) {
	hackathonID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hackathon ID format", "code": "VALIDATION_ERROR"})
		return
	}
	participantID, err := primitive.ObjectIDFromHex(c.Param("participantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID format", "code": "VALIDATION_ERROR"})
		return
	}

	if err := h.registrationService.Withdraw(c, hackathonID, participantID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Participant withdrawn"})
}

// GetParticipants handles GET /hackathons/:id/participants
func (h *ParticipantHandler) GetParticipants(c *gin.Context) {
	hackathonID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hackathon ID format", "code": "VALIDATION_ERROR"})
		return
	}

	participants, err := h.registrationService.GetParticipants(c, hackathonID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}
