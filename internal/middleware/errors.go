package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"user-discovery-service/internal/discovery"
	"user-discovery-service/internal/logging"
)

type httpStatuser interface {
	HTTPStatus() int
}

// ErrorHandler turns the first error a handler attached with c.Error into a
// JSON response. Handlers never write their own error bodies.
func ErrorHandler(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors[0].Err
		status, msg := classifyError(err)

		fields := map[string]any{
			logging.FieldRequestID: RequestIDFromContext(c),
			"path":                 c.Request.URL.Path,
			"status":               status,
		}
		if status >= 500 {
			logger.Error("request error", err, fields)
		} else {
			logger.Warn("request rejected: "+err.Error(), fields)
		}

		c.JSON(status, gin.H{"error": msg, "requestId": RequestIDFromContext(c)})
	}
}

func classifyError(err error) (int, string) {
	var statuser httpStatuser
	if errors.As(err, &statuser) {
		return statuser.HTTPStatus(), err.Error()
	}

	var upErr *discovery.UpstreamError
	if errors.As(err, &upErr) {
		if upErr.StatusCode >= 400 && upErr.StatusCode < 500 {
			return upErr.StatusCode, http.StatusText(upErr.StatusCode)
		}
		return http.StatusBadGateway, "Discovery service unavailable"
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, "Discovery service timed out"
	}
	if errors.Is(err, discovery.ErrBackendUnavailable) {
		return http.StatusBadGateway, "Discovery service unavailable"
	}

	return http.StatusInternalServerError, "Internal server error"
}

// NotFound answers unknown routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found", "requestId": RequestIDFromContext(c)})
	}
}
