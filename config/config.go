package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// TokenExpireSeconds is the lifetime of issued login tokens.
const TokenExpireSeconds = 3600

// Config holds all configuration for the application
type Config struct {
	Env        Environment
	ServerPort string

	// Database configuration
	DatabaseURL string

	// Redis configuration (optional, enables login rate limiting)
	RedisURL string

	// Auth configuration
	JWTSecret  string
	BcryptCost int
}

// Load creates a Config from the environment. A .env file in the working
// directory is read first when present, real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:        GetEnvironment(),
		ServerPort: getEnvOr("PORT", "3001"),
		RedisURL:   os.Getenv("REDIS_URL"),
		JWTSecret:  os.Getenv("SECRET"),
	}

	// The test environment runs against its own database.
	if cfg.Env == Test {
		cfg.DatabaseURL = os.Getenv("TEST_DATABASE_URL")
	} else {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	cost, err := strconv.Atoi(getEnvOr("SALT_ROUND", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid SALT_ROUND: %w", err)
	}
	cfg.BcryptCost = cost

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
