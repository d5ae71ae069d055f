package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"user-discovery-service/internal/auth"
	"user-discovery-service/internal/config"
	"user-discovery-service/internal/discovery"
	"user-discovery-service/internal/handler"
	"user-discovery-service/internal/logging"
	"user-discovery-service/internal/middleware"
)

type Deps struct {
	Discovery discovery.Service
	Logger    logging.Logger
	Env       config.Env
	StartTime time.Time
	Now       func() time.Time

	// TokenConfig enables bearer auth on the user routes when Secret is set.
	TokenConfig auth.TokenConfig
	// RateLimiter, when non-nil, limits the user routes per client IP.
	RateLimiter *middleware.RateLimiter
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.ErrorHandler(deps.Logger))
	r.NoRoute(middleware.NotFound())

	api := r.Group("/api/discover")

	healthHandler := &handler.HealthHandler{StartTime: deps.StartTime, Env: deps.Env, Now: deps.Now}
	api.GET("/health", healthHandler.Check)

	users := api.Group("/users")
	if deps.RateLimiter != nil {
		users.Use(middleware.RateLimitMiddleware(deps.RateLimiter))
	}
	if deps.TokenConfig.Secret != "" {
		users.Use(middleware.RequireAuth(deps.TokenConfig))
	}

	discoverHandler := &handler.DiscoverHandler{Service: deps.Discovery, Logger: deps.Logger}
	users.GET("/:userId", discoverHandler.Discover)
	users.GET("/:userId/suggestions", discoverHandler.Suggestions)
	users.GET("/:userId/all", discoverHandler.AllUserData)

	return r
}
