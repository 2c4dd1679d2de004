package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshare/backend/internal/models"
	"github.com/recipeshare/backend/internal/testhelpers"
)

func TestResetEndpoint(t *testing.T) {
	engine, db, _ := setupAPI(t)
	testhelpers.CreateTestUser(t, db, "first", "First", "firstpassword")
	testhelpers.CreateTestUser(t, db, "second", "Second", "secondpassword")

	w := performRequest(t, engine, http.MethodPost, "/api/testing/reset", nil, "")
	expectStatus(t, w, http.StatusNoContent)
	assert.Empty(t, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
