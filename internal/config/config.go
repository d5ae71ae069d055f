package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port                int
	GinMode             string
	TLSCertFile         string
	TLSKeyFile          string
	DiscoveryBackendURL string
	JWTSecret           string
	JWTIssuer           string
	JWTAudience         string
	RateLimitPerMinute  int
	LogLevel            string
	LogFormat           string
}

// Env is the configuration provider. Values are looked up on demand, so
// callers holding an Env observe changes made after startup.
type Env interface {
	Getenv(key string) string
}

type osEnv struct{}

func (osEnv) Getenv(key string) string { return os.Getenv(key) }

// OSEnv returns the Env backed by the process environment.
func OSEnv() Env { return osEnv{} }

func LoadConfig() (Config, error) {
	return LoadConfigFromEnv(osEnv{})
}

func LoadConfigFromEnv(env Env) (Config, error) {
	cfg := Config{
		Port:      8080,
		GinMode:   "release",
		LogLevel:  "info",
		LogFormat: "json",
	}

	if raw := env.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT")
		}
		cfg.Port = port
	}

	if raw := env.Getenv("GIN_MODE"); raw != "" {
		cfg.GinMode = raw
	}

	cfg.TLSCertFile = env.Getenv("TLS_CERT_FILE")
	cfg.TLSKeyFile = env.Getenv("TLS_KEY_FILE")

	cfg.DiscoveryBackendURL = strings.TrimRight(env.Getenv("DISCOVERY_BACKEND_URL"), "/")
	if cfg.DiscoveryBackendURL == "" {
		return Config{}, fmt.Errorf("DISCOVERY_BACKEND_URL is required")
	}
	if u, err := url.Parse(cfg.DiscoveryBackendURL); err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, fmt.Errorf("invalid DISCOVERY_BACKEND_URL")
	}

	cfg.JWTSecret = env.Getenv("JWT_SECRET")
	cfg.JWTIssuer = env.Getenv("JWT_ISSUER")
	cfg.JWTAudience = env.Getenv("JWT_AUDIENCE")

	if raw := env.Getenv("RATE_LIMIT_PER_MINUTE"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE")
		}
		cfg.RateLimitPerMinute = limit
	}

	if raw := env.Getenv("LOG_LEVEL"); raw != "" {
		cfg.LogLevel = strings.ToLower(raw)
	}

	if raw := env.Getenv("LOG_FORMAT"); raw != "" {
		switch strings.ToLower(raw) {
		case "json", "console":
			cfg.LogFormat = strings.ToLower(raw)
		default:
			return Config{}, fmt.Errorf("invalid LOG_FORMAT")
		}
	}

	return cfg, nil
}
