package handler

import (
	"errors"
	"log"
	"net/http"

	"bistro_backend/internal/middleware"
	"bistro_backend/internal/model"
	"bistro_backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler handles user account requests.
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// getAuthEmail returns the authenticated caller's email from the context.
func getAuthEmail(c *gin.Context) (string, error) {
	emailVal, exists := c.Get(middleware.AuthEmailKey)
	if !exists {
		return "", errors.New("email not found in context")
	}
	email, ok := emailVal.(string)
	if !ok {
		return "", errors.New("invalid email type in context")
	}
	return email, nil
}

// CreateUser stores a user on first sign-in. Inserting twice with the same
// email yields the already-exist marker with a null insertedId.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if user.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	result, err := h.service.CreateUser(c.Request.Context(), &user)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusOK, gin.H{"message": "user already exist", "insertedId": nil})
			return
		}
		log.Printf("Error creating user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": result.InsertedID})
}

// ListUsers returns every user. Admin only.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		log.Printf("Error listing users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin reports whether the given email belongs to an admin. Callers
// may only ask about themselves; a mismatched email is forbidden regardless
// of role.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	authEmail, err := getAuthEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}
	if email != authEmail {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	isAdmin, err := h.service.IsAdmin(c.Request.Context(), email)
	if err != nil {
		log.Printf("Error checking admin for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// DeleteUser removes a user by id. Admin only.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	result, err := h.service.DeleteUser(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error deleting user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}

// PromoteUser sets role=admin on a user. Admin only.
func (h *UserHandler) PromoteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	result, err := h.service.PromoteUser(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error promoting user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to promote user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}

// RegisterUserRoutes registers user routes. Creation is open (first sign-in),
// the admin self-check needs a token, everything else needs the admin role.
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", authMW, adminMW, h.ListUsers)
		users.GET("/admin/:email", authMW, h.CheckAdmin)
		users.DELETE("/:id", authMW, adminMW, h.DeleteUser)
		users.PATCH("/admin/:id", authMW, adminMW, h.PromoteUser)
	}
}
