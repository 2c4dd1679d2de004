package api_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/recipeshare/backend/config"
	"github.com/recipeshare/backend/internal/models"
	"github.com/recipeshare/backend/internal/router"
	"github.com/recipeshare/backend/internal/service"
	"github.com/recipeshare/backend/internal/testhelpers"
)

// setupAPI builds the full route table on an in-memory database, exactly as
// the server wires it in the test environment.
func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB, *service.AuthService) {
	t.Helper()

	cfg := &config.Config{
		Env:        config.Test,
		ServerPort: "0",
		JWTSecret:  "test-secret",
		BcryptCost: bcrypt.MinCost,
	}
	db := testhelpers.SetupTestDatabase(t)
	engine := router.Setup(cfg, db, nil)
	auth := service.NewAuthService(db, cfg.JWTSecret, time.Hour)

	return engine, db, auth
}

func tokenFor(t *testing.T, auth *service.AuthService, user *models.User) string {
	t.Helper()

	token, err := auth.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func performRequest(t *testing.T, engine *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func recipeBody(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":             name,
		"imagePath":        name + " imagePath",
		"shortDescription": name + " short description",
		"description":      name + " description",
		"difficulty":       2,
		"estimatedMinutes": 25,
		"ingredients": []map[string]interface{}{
			{"name": name + " ingredient 1", "quantity": 1, "unit": "cup", "imagePath": ""},
			{"name": name + " ingredient 2", "quantity": 2.5, "unit": "tbsp", "imagePath": ""},
		},
		"steps": []map[string]interface{}{
			{"description": name + " step 1", "warning": "", "tip": "", "imagePath": ""},
			{"description": name + " step 2", "warning": "hot pan", "tip": "", "imagePath": ""},
		},
	}
}

// expectStatus fails with the response body in the message, which makes
// broken expectations much quicker to read.
func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()

	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
