package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"user-discovery-service/internal/auth"
)

const userIDContextKey = "userID"

// UserIDFromContext returns the authenticated caller, if RequireAuth ran.
func UserIDFromContext(c *gin.Context) (string, bool) {
	value := c.GetString(userIDContextKey)
	return value, value != ""
}

func RequireAuth(cfg auth.TokenConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication token", "requestId": RequestIDFromContext(c)})
			return
		}

		claims, err := auth.VerifyToken(strings.TrimSpace(parts[1]), cfg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication token", "requestId": RequestIDFromContext(c)})
			return
		}

		c.Set(userIDContextKey, claims.UserID())
		c.Next()
	}
}
