// Package config loads application configuration from the environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string

	// HTTP server
	HTTPAddr string

	// Database. Driver is one of "memory", "sqlite", "postgres".
	DatabaseDriver string
	DatabaseURL    string

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// LocalUserID scopes CLI commands that run against the store
	// directly, without going through login.
	LocalUserID string
}

// Load loads configuration from environment variables. A .env file in
// the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		HTTPAddr: getEnv("HTTP_ADDR", "0.0.0.0:8080"),

		DatabaseDriver: getEnv("DATABASE_DRIVER", "memory"),
		DatabaseURL:    getEnv("DATABASE_URL", "taskdeck.db"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  getDurationEnv("TOKEN_TTL", 24*time.Hour),

		LocalUserID: getEnv("TASKDECK_USER_ID", "00000000-0000-0000-0000-000000000001"),
	}

	return cfg, nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
