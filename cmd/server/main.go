package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"user-discovery-service/internal/auth"
	"user-discovery-service/internal/config"
	"user-discovery-service/internal/discovery"
	"user-discovery-service/internal/logging"
	"user-discovery-service/internal/middleware"
	"user-discovery-service/internal/server"
)

func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	gin.SetMode(cfg.GinMode)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
		defer limiter.Close()
	}

	router := server.NewRouter(server.Deps{
		Discovery: discovery.NewRemoteService(cfg.DiscoveryBackendURL),
		Logger:    logger.With(map[string]any{logging.FieldComponent: "gateway"}),
		Env:       config.OSEnv(),
		StartTime: startTime,
		TokenConfig: auth.TokenConfig{
			Secret:   cfg.JWTSecret,
			Issuer:   cfg.JWTIssuer,
			Audience: cfg.JWTAudience,
		},
		RateLimiter: limiter,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("user discovery service listening", map[string]any{
		"port":         cfg.Port,
		"backend":      cfg.DiscoveryBackendURL,
		"auth":         cfg.JWTSecret != "",
		"rateLimitRpm": cfg.RateLimitPerMinute,
	})
	if err := server.Run(ctx, cfg, router); err != nil {
		logger.Error("server stopped", err, nil)
		os.Exit(1)
	}
	logger.Info("server stopped", nil)
}
