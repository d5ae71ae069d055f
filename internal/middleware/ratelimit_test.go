package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiter_AllowAndDeny(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := now
	rl := NewRateLimiterWithNow(2, time.Minute, func() time.Time { return clock })

	if ok, _ := rl.Allow("ip"); !ok {
		t.Fatalf("expected allow")
	}
	if ok, _ := rl.Allow("ip"); !ok {
		t.Fatalf("expected allow")
	}
	ok, retry := rl.Allow("ip")
	if ok {
		t.Fatalf("expected deny")
	}
	if retry != time.Minute {
		t.Fatalf("expected retry after 1m, got %v", retry)
	}
	if ok, _ := rl.Allow("other-ip"); !ok {
		t.Fatalf("expected other key to be independent")
	}

	clock = clock.Add(time.Minute + time.Second)
	if ok, _ := rl.Allow("ip"); !ok {
		t.Fatalf("expected allow after window")
	}
}

func TestRateLimitMiddleware_Returns429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithNow(1, time.Minute, func() time.Time { return clock })

	r := gin.New()
	r.Use(RateLimitMiddleware(rl))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") != "60" {
		t.Fatalf("expected Retry-After 60, got %q", w.Header().Get("Retry-After"))
	}
}
