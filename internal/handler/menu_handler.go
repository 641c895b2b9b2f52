package handler

import (
	"log"
	"net/http"

	"bistro_backend/internal/model"
	"bistro_backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuHandler handles catalog requests.
type MenuHandler struct {
	service service.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(s service.MenuService) *MenuHandler {
	return &MenuHandler{service: s}
}

func (h *MenuHandler) ListMenu(c *gin.Context) {
	items, err := h.service.ListMenu(c.Request.Context())
	if err != nil {
		log.Printf("Error listing menu: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve menu"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItem returns a single menu item. An absent item is a null payload with
// 200, not a 404.
func (h *MenuHandler) GetItem(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item ID"})
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error getting menu item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve menu item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) CreateItem(c *gin.Context) {
	var item model.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.service.CreateItem(c.Request.Context(), &item)
	if err != nil {
		log.Printf("Error creating menu item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": result.InsertedID})
}

func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item ID"})
		return
	}

	result, err := h.service.DeleteItem(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error deleting menu item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}

// RegisterMenuRoutes registers menu routes. Reads are public, writes need
// the admin role.
func (h *MenuHandler) RegisterMenuRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	menu := rg.Group("/menu")
	{
		menu.GET("", h.ListMenu)
		menu.GET("/:id", h.GetItem)
		menu.POST("", authMW, adminMW, h.CreateItem)
		menu.DELETE("/:id", authMW, adminMW, h.DeleteItem)
	}
}
