package config

import (
	"os"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Redis (optional session/limiter storage)
	RedisURL string

	// LINE channel
	ChannelSecret      string // HMAC key for webhook signatures
	ChannelAccessToken string // Bearer token for the Messaging API

	// Resolution cache
	CacheTTL time.Duration

	// Canonical table override snapshot (optional, hot-reloaded)
	CatalogOverrideFile string

	// OIDC (admin console)
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                 getEnv("ENV", "development"),
		ServerAddr:          getEnv("SERVER_ADDR", ":3000"),
		BaseURL:             getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:         getEnv("DATABASE_URL", "postgres://localhost:5432/guimashan?sslmode=disable"),
		RedisURL:            getEnv("REDIS_URL", ""),
		ChannelSecret:       getEnv("CHANNEL_SECRET", ""),
		ChannelAccessToken:  getEnv("CHANNEL_ACCESS_TOKEN", ""),
		CacheTTL:            getDuration("CACHE_TTL", 5*time.Minute),
		CatalogOverrideFile: getEnv("CATALOG_OVERRIDE_FILE", ""),
		OIDCIssuer:          getEnv("OIDC_ISSUER", ""),
		OIDCClientID:        getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret:    getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:     getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),
		SessionSecret:       getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
