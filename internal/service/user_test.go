package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/recipeshare/backend/internal/models"
	"github.com/recipeshare/backend/internal/service"
	"github.com/recipeshare/backend/internal/testhelpers"
)

func TestCreateUser(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	users := service.NewUserService(db, bcrypt.MinCost)
	ctx := context.Background()

	t.Run("stores a hashed password, never the plaintext", func(t *testing.T) {
		user, err := users.Create(ctx, "alice", "Alice", "alicepassword")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.NotEqual(t, "alicepassword", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("alicepassword")))
	})

	t.Run("rejects a duplicate username", func(t *testing.T) {
		_, err := users.Create(ctx, "alice", "Other Alice", "otherpassword")

		var validationErr service.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "username must be unique", validationErr.Message)
	})

	t.Run("rejects a missing username", func(t *testing.T) {
		_, err := users.Create(ctx, "", "Nameless", "password")
		var validationErr service.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("rejects a missing password", func(t *testing.T) {
		_, err := users.Create(ctx, "bob", "Bob", "")
		var validationErr service.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestGetUser(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	users := service.NewUserService(db, bcrypt.MinCost)
	ctx := context.Background()

	created := testhelpers.CreateTestUser(t, db, "carol", "Carol", "carolpassword")

	t.Run("by id", func(t *testing.T) {
		user, err := users.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "carol", user.Username)
	})

	t.Run("by id when absent", func(t *testing.T) {
		_, err := users.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("by username", func(t *testing.T) {
		user, err := users.GetByUsername(ctx, "carol")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("by username when absent", func(t *testing.T) {
		_, err := users.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestResetAll(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	users := service.NewUserService(db, bcrypt.MinCost)
	ctx := context.Background()

	testhelpers.CreateTestUser(t, db, "dave", "Dave", "davepassword")
	testhelpers.CreateTestUser(t, db, "erin", "Erin", "erinpassword")

	require.NoError(t, users.ResetAll(ctx))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
