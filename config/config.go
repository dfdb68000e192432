package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the admin client
type Config struct {
	APIBaseURL  string
	Environment string
	HTTPTimeout time.Duration
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the .env file usually does not exist and we rely on
	// system environment variables, so a load failure is only a warning.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		HTTPTimeout: 30 * time.Second,
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:3000/api/v1"
	}

	if s := os.Getenv("HTTP_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			log.Printf("Warning: invalid HTTP_TIMEOUT %q, using default: %v", s, err)
		} else {
			cfg.HTTPTimeout = d
		}
	}

	return cfg, nil
}
