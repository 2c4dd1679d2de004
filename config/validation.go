package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that the loaded configuration is usable.
func Validate(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		field := "DATABASE_URL"
		if cfg.Env == Test {
			field = "TEST_DATABASE_URL"
		}
		return ValidationError{Field: field, Message: "is required"}
	}
	if cfg.JWTSecret == "" {
		return ValidationError{Field: "SECRET", Message: "is required"}
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return ValidationError{Field: "SALT_ROUND", Message: "must be between 4 and 31"}
	}
	return nil
}
