package handler

import (
	"log"
	"net/http"

	"bistro_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// TokenHandler issues bearer tokens for the frontend.
type TokenHandler struct {
	jwtUtil *utils.JWTUtil
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(jwtUtil *utils.JWTUtil) *TokenHandler {
	return &TokenHandler{jwtUtil: jwtUtil}
}

// IssueToken signs whatever identity payload the client sends. The payload's
// shape is not validated; the frontend authenticates the user and this
// endpoint just mints a session token for it.
func (h *TokenHandler) IssueToken(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	token, err := h.jwtUtil.GenerateToken(payload)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// RegisterTokenRoutes registers the token issuance route.
func (h *TokenHandler) RegisterTokenRoutes(rg *gin.RouterGroup) {
	rg.POST("/jwt", h.IssueToken)
}
