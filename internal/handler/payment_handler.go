package handler

import (
	"log"
	"net/http"
	"time"

	"bistro_backend/internal/model"
	"bistro_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler creates payment intents and records completed payments.
type PaymentHandler struct {
	service service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(s service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

// CreatePaymentIntent asks the processor for a card payment intent covering
// the given price and returns the client secret for the frontend to confirm.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req model.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	clientSecret, err := h.service.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// RecordPayment stores a payment document after a successful charge.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var payment model.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}

	result, err := h.service.RecordPayment(c.Request.Context(), &payment)
	if err != nil {
		log.Printf("Error recording payment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": result.InsertedID})
}

// RegisterPaymentRoutes registers payment routes.
func (h *PaymentHandler) RegisterPaymentRoutes(rg *gin.RouterGroup) {
	rg.POST("/create-payment-intent", h.CreatePaymentIntent)
	rg.POST("/payments", h.RecordPayment)
}
