package middleware

import (
	"log"
	"net/http"

	"bistro_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware creates a middleware that allows only admins through. The
// role lives in the users collection, not in the token, so the gate looks
// the caller up by the authenticated email. Must run after JWTAuthMiddleware.
// A store error aborts with 500 rather than letting the request through.
func AdminMiddleware(userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := c.Get(AuthEmailKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		emailStr, ok := email.(string)
		if !ok || emailStr == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		isAdmin, err := userService.IsAdmin(c.Request.Context(), emailStr)
		if err != nil {
			log.Printf("Error checking admin role for %s: %v", emailStr, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "failed to verify role"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Next()
	}
}
