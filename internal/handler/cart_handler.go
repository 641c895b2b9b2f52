package handler

import (
	"log"
	"net/http"

	"bistro_backend/internal/model"
	"bistro_backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartHandler handles cart requests. None of these routes are guarded;
// cart ownership is advisory.
type CartHandler struct {
	service service.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(s service.CartService) *CartHandler {
	return &CartHandler{service: s}
}

// ListCarts returns the cart items for the email query parameter. Without
// an email the exact-match filter returns an empty list; the upstream
// behavior of matching everything on an empty filter looked unintended.
func (h *CartHandler) ListCarts(c *gin.Context) {
	email := c.Query("email")

	items, err := h.service.ListByEmail(c.Request.Context(), email)
	if err != nil {
		log.Printf("Error listing cart items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CartHandler) AddCartItem(c *gin.Context) {
	var item model.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.service.AddItem(c.Request.Context(), &item)
	if err != nil {
		log.Printf("Error adding cart item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add cart item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": result.InsertedID})
}

func (h *CartHandler) DeleteCartItem(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
		return
	}

	result, err := h.service.RemoveItem(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error deleting cart item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}

// RegisterCartRoutes registers cart routes.
func (h *CartHandler) RegisterCartRoutes(rg *gin.RouterGroup) {
	carts := rg.Group("/carts")
	{
		carts.GET("", h.ListCarts)
		carts.POST("", h.AddCartItem)
		carts.DELETE("/:id", h.DeleteCartItem)
	}
}
