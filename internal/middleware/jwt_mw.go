package middleware

import (
	"net/http"
	"strings"

	"bistro_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthClaimsKey = "authClaims"
	AuthEmailKey  = "authEmail"
)

// JWTAuthMiddleware creates a middleware that verifies the bearer token and
// attaches the decoded claims to the request context. Guarded routes expect
// at minimum an email claim identifying the caller.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		email, _ := claims["email"].(string)

		c.Set(AuthClaimsKey, claims)
		c.Set(AuthEmailKey, email)

		c.Next()
	}
}
