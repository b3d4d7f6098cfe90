// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// DBPath is the SQLite database file.
	DBPath string

	// JWTSecret signs session tokens. Required.
	JWTSecret string

	// TokenTTL bounds how long a session token stays valid.
	TokenTTL time.Duration

	// PaymentDelay is the artificial pause of the simulated payment flow,
	// standing in for a real payment-gateway round trip.
	PaymentDelay time.Duration

	// BaseURL is the externally visible origin used to build public
	// payment links.
	BaseURL string

	// StaticPath optionally points at a frontend build directory to serve.
	// Empty disables static serving.
	StaticPath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; missing files are fine.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:       getEnv("PORT", "8080"),
		DBPath:     getEnv("DB_PATH", "./data/billwise.db"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:8080"),
		StaticPath: os.Getenv("STATIC_PATH"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	var err error
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.PaymentDelay, err = getDuration("PAYMENT_DELAY", 2*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.PaymentDelay < 0 {
		return Config{}, fmt.Errorf("PAYMENT_DELAY must not be negative")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}
