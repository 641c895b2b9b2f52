package handler

import (
	"log"
	"net/http"

	"bistro_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves testimonials.
type ReviewHandler struct {
	service service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.service.ListReviews(c.Request.Context())
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// RegisterReviewRoutes registers the public reviews route.
func (h *ReviewHandler) RegisterReviewRoutes(rg *gin.RouterGroup) {
	rg.GET("/reviews", h.ListReviews)
}
