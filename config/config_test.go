package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/recipes")
	t.Setenv("TEST_DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("SECRET", "config-test-secret")
	t.Setenv("SALT_ROUND", "")
}

func TestLoad(t *testing.T) {
	t.Run("fills defaults from a minimal environment", func(t *testing.T) {
		setBaseEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, Development, cfg.Env)
		assert.Equal(t, "3001", cfg.ServerPort)
		assert.Equal(t, "postgres://localhost:5432/recipes", cfg.DatabaseURL)
		assert.Equal(t, "config-test-secret", cfg.JWTSecret)
		assert.Equal(t, 10, cfg.BcryptCost)
	})

	t.Run("honours explicit port and salt round", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("PORT", "8080")
		t.Setenv("SALT_ROUND", "12")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, 12, cfg.BcryptCost)
	})

	t.Run("the test environment uses the test database", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("APP_ENV", "test")
		t.Setenv("TEST_DATABASE_URL", "postgres://localhost:5432/recipes_test")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Env)
		assert.Equal(t, "postgres://localhost:5432/recipes_test", cfg.DatabaseURL)
	})

	t.Run("the test environment without a test database fails", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("APP_ENV", "test")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEST_DATABASE_URL")
	})

	t.Run("a missing secret fails validation", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("SECRET", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SECRET")
	})

	t.Run("a non-numeric salt round fails", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("SALT_ROUND", "ten")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("an out-of-range salt round fails validation", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("SALT_ROUND", "99")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SALT_ROUND")
	})
}

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		value string
		want  Environment
	}{
		{"development", Development},
		{"test", Test},
		{"production", Production},
		{"", Development},
		{"staging", Development},
	}
	for _, tt := range tests {
		t.Run("APP_ENV="+tt.value, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.value)
			assert.Equal(t, tt.want, GetEnvironment())
		})
	}
}
