package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"user-discovery-service/internal/config"
)

const (
	ServiceName    = "user-discovery-service"
	ServiceVersion = "1.0.0"

	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type HealthStatus struct {
	Status        string             `json:"status"`
	Service       string             `json:"service"`
	Version       string             `json:"version"`
	Timestamp     string             `json:"timestamp"`
	UptimeSeconds int64              `json:"uptime"`
	Dependencies  map[string]*string `json:"dependencies"`
}

// HealthHandler reports liveness. It does not contact the dependencies; it
// only reports the addresses currently configured for them.
type HealthHandler struct {
	StartTime time.Time
	Env       config.Env
	Now       func() time.Time
}

func (h *HealthHandler) Check(c *gin.Context) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	t := now()

	uptime := int64(t.Sub(h.StartTime) / time.Second)
	if uptime < 0 {
		uptime = 0
	}

	c.JSON(http.StatusOK, HealthStatus{
		Status:        "healthy",
		Service:       ServiceName,
		Version:       ServiceVersion,
		Timestamp:     t.UTC().Format(timestampLayout),
		UptimeSeconds: uptime,
		Dependencies: map[string]*string{
			"user-service":   h.lookup("USER_SERVICE_URL"),
			"follow-service": h.lookup("FOLLOW_SERVICE_URL"),
		},
	})
}

// lookup returns nil for unset and for empty values, so an empty URL is
// reported as null rather than "".
func (h *HealthHandler) lookup(key string) *string {
	if h.Env == nil {
		return nil
	}
	v := h.Env.Getenv(key)
	if v == "" {
		return nil
	}
	return &v
}
