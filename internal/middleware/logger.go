package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"user-discovery-service/internal/logging"
)

// RequestLogger writes one record per completed request.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		status := c.Writer.Status()
		fields := map[string]any{
			logging.FieldRequestID: RequestIDFromContext(c),
			"method":               c.Request.Method,
			"path":                 path,
			"status":               status,
			"latencyMs":            time.Since(start).Milliseconds(),
			"clientIp":             c.ClientIP(),
		}
		switch {
		case status >= 500:
			logger.Warn("request failed", fields)
		default:
			logger.Info("request completed", fields)
		}
	}
}
