package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/recipeshare/backend/internal/service"
)

func runErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(ErrorHandler())
	engine.GET("/", func(c *gin.Context) {
		_ = c.Error(err)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"not found has no body", service.ErrNotFound, http.StatusNotFound, ""},
		{"missing token", service.ErrTokenMissing, http.StatusUnauthorized, `{"error":"token missing or invalid"}`},
		{"permission denied", service.ErrPermissionDenied, http.StatusUnauthorized, `{"error":"permission denied"}`},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, `{"error":"invalid username or password"}`},
		{"invalid token", service.ErrInvalidToken, http.StatusBadRequest, `{"error":"invalid token"}`},
		{"expired token", service.ErrTokenExpired, http.StatusBadRequest, `{"error":"token expired"}`},
		{"malformed id", service.ErrMalformedID, http.StatusBadRequest, `{"error":"malformatted id"}`},
		{"validation failure", service.ValidationError{Message: "username must be unique"}, http.StatusBadRequest, `{"error":"username must be unique"}`},
		{"unknown errors are hidden", errors.New("pq: connection refused"), http.StatusInternalServerError, `{"error":"internal server error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := runErrorHandler(t, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}

	t.Run("a clean request passes through untouched", func(t *testing.T) {
		gin.SetMode(gin.TestMode)

		engine := gin.New()
		engine.Use(ErrorHandler())
		engine.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	})

	t.Run("wrapped errors still map to their status", func(t *testing.T) {
		w := runErrorHandler(t, fmt.Errorf("fetching recipe: %w", service.ErrNotFound))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
