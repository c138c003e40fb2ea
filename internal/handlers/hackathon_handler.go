package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackbridge/hackathon-backend/internal/models"
	"github.com/hackbridge/hackathon-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HackathonHandler handles hackathon CRUD HTTP requests
type HackathonHandler struct {
	hackathonService services.HackathonService
}

// NewHackathonHandler creates a new HackathonHandler
func NewHackathonHandler(hackathonService services.HackathonService) *HackathonHandler {
	return &HackathonHandler{hackathonService: hackathonService}
}

// CreateHackathon handles POST /hackathons
func (h *HackathonHandler) CreateHackathon(c *gin.Context) {
	var req struct {
		Title           string `json:"title" binding:"required"`
		Description     string `json:"description"`
		StartDate       string `json:"startDate"`
		EndDate         string `json:"endDate"`
		PaymentRequired bool   `json:"paymentRequired"`
		UpiID           string `json:"upiId"`
		Amount          int    `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}

	hackathon := models.Hackathon{
		Title:           req.Title,
		Description:     req.Description,
		PaymentRequired: req.PaymentRequired,
		UpiID:           req.UpiID,
		Amount:          req.Amount,
	}
	if req.StartDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date format (YYYY-MM-DD)", "code": "VALIDATION_ERROR"})
			return
		}
		hackathon.StartDate = start
	}
	if req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date format (YYYY-MM-DD)", "code": "VALIDATION_ERROR"})
			return
		}
		hackathon.EndDate = end
	}

	if err := h.hackathonService.CreateHackathon(c, &hackathon); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hackathon)
}

// GetAllHackathons handles GET /hackathons
func (h *HackathonHandler) GetAllHackathons(c *gin.Context) {
	hackathons, err := h.hackathonService.GetAllHackathons(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hackathons)
}

// GetHackathonByID handles GET /hackathons/:id
func (h *HackathonHandler) GetHackathonByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format", "code": "VALIDATION_ERROR"})
		return
	}

	hackathon, err := h.hackathonService.GetHackathonByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hackathon)
}

// DeleteHackathon handles DELETE /hackathons/:id
func (h *HackathonHandler) DeleteHackathon(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format", "code": "VALIDATION_ERROR"})
		return
	}

	if err := h.hackathonService.DeleteHackathon(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hackathon deleted"})
}

// UpdatePaymentDetails handles PUT /hackathons/:id/payment-details
func (h *HackathonHandler) UpdatePaymentDetails(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format", "code": "VALIDATION_ERROR"})
		return
	}

	var req struct {
		PaymentRequired *bool  `json:"paymentRequired" binding:"required"`
		UpiID           string `json:"upiId"`
		Amount          int    `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}

	hackathon, err := h.hackathonService.UpdatePaymentDetails(c, id, *req.PaymentRequired, req.UpiID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hackathon)
}
