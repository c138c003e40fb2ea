package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackbridge/hackathon-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentHandler handles payment-flow HTTP requests
type PaymentHandler struct {
	paymentService services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateOrder handles POST /payments/create/:hackathonId/:participantId
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	hackathonID, err := primitive.ObjectIDFromHex(c.Param("hackathonId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hackathon ID format", "code": "VALIDATION_ERROR"})
		return
	}
	participantID, err := primitive.ObjectIDFromHex(c.Param("participantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID format", "code": "VALIDATION_ERROR"})
		return
	}

	var req struct {
		Amount int `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}

	result, err := h.paymentService.CreateOrder(c, hackathonID, participantID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// VerifyPayment handles POST /payments/verify
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req struct {
		PaymentID string `json:"paymentId" binding:"required"`
		OrderID   string `json:"orderId" binding:"required"`
		Signature string `json:"signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}

	payment, err := h.paymentService.VerifyPayment(c, req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment verified", "payment": payment})
}
