package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type mapEnv map[string]string

func (m mapEnv) Getenv(key string) string { return m[key] }

func checkHealth(t *testing.T, h *HealthHandler) map[string]any {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", h.Check)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return resp
}

func TestHealth_UptimeAdvances(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := start.Add(10 * time.Second)
	h := &HealthHandler{StartTime: start, Env: mapEnv{}, Now: func() time.Time { return clock }}

	first := checkHealth(t, h)
	clock = clock.Add(2 * time.Second)
	second := checkHealth(t, h)

	diff := second["uptime"].(float64) - first["uptime"].(float64)
	if diff < 1 || diff > 3 {
		t.Fatalf("expected uptime to advance by ~2, got %v", diff)
	}
	for _, key := range []string{"status", "service", "version"} {
		if first[key] != second[key] {
			t.Fatalf("%s changed between calls: %v vs %v", key, first[key], second[key])
		}
	}
	if first["status"] != "healthy" || first["service"] != "user-discovery-service" || first["version"] != "1.0.0" {
		t.Fatalf("unexpected identity fields: %v", first)
	}
	if first["timestamp"] != "2026-03-01T12:00:10.000Z" {
		t.Fatalf("unexpected timestamp %v", first["timestamp"])
	}
}

func TestHealth_DependenciesReadPerCall(t *testing.T) {
	env := mapEnv{"USER_SERVICE_URL": "http://user-service:3001"}
	h := &HealthHandler{StartTime: time.Now(), Env: env}

	resp := checkHealth(t, h)
	deps := resp["dependencies"].(map[string]any)
	if deps["user-service"] != "http://user-service:3001" {
		t.Fatalf("unexpected user-service %v", deps["user-service"])
	}
	v, present := deps["follow-service"]
	if !present || v != nil {
		t.Fatalf("expected follow-service null, got %v (present=%v)", v, present)
	}

	env["FOLLOW_SERVICE_URL"] = "http://follow-service:3007"
	resp = checkHealth(t, h)
	deps = resp["dependencies"].(map[string]any)
	if deps["follow-service"] != "http://follow-service:3007" {
		t.Fatalf("expected live value, got %v", deps["follow-service"])
	}
}

func TestHealth_NoEnvProvider(t *testing.T) {
	resp := checkHealth(t, &HealthHandler{StartTime: time.Now()})
	deps := resp["dependencies"].(map[string]any)
	if deps["user-service"] != nil || deps["follow-service"] != nil {
		t.Fatalf("expected null dependencies, got %v", deps)
	}
	if resp["uptime"].(float64) != 0 {
		t.Fatalf("expected zero uptime, got %v", resp["uptime"])
	}
}

func TestHealth_EmptyDependencyIsNull(t *testing.T) {
	h := &HealthHandler{StartTime: time.Now(), Env: mapEnv{"USER_SERVICE_URL": "", "FOLLOW_SERVICE_URL": "http://follow-service:3007"}}

	deps := checkHealth(t, h)["dependencies"].(map[string]any)
	v, present := deps["user-service"]
	if !present || v != nil {
		t.Fatalf("expected user-service null, got %v (present=%v)", v, present)
	}
	if deps["follow-service"] != "http://follow-service:3007" {
		t.Fatalf("unexpected follow-service %v", deps["follow-service"])
	}
}
