package testhelpers

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/recipeshare/backend/internal/database"
	"github.com/recipeshare/backend/internal/models"
)

// SetupTestDatabase opens an in-memory SQLite database migrated to the
// current schema. Each test gets its own named database so state never
// leaks between tests.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// CreateTestUser stores a user with a bcrypt hash of password. MinCost keeps
// the suite fast.
func CreateTestUser(t *testing.T, db *gorm.DB, username, displayName, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

// CreateTestRecipe stores a recipe owned by owner, with two ingredients and
// two steps the way real recipes in this API look.
func CreateTestRecipe(t *testing.T, db *gorm.DB, owner uuid.UUID, name string, likes int, date time.Time) *models.Recipe {
	t.Helper()

	recipe := models.Recipe{
		Name:             name,
		ImagePath:        name + " imagePath",
		ShortDescription: name + " short description",
		Description:      name + " description",
		Difficulty:       1,
		EstimatedMinutes: 15,
		Likes:            likes,
		UserID:           owner,
		Date:             date,
		Ingredients: []models.Ingredient{
			{Position: 0, Name: name + " ingredient 1", Quantity: 1, Unit: "cup"},
			{Position: 1, Name: name + " ingredient 2", Quantity: 2, Unit: "tbsp"},
		},
		Steps: []models.Step{
			{Position: 0, Description: name + " step 1"},
			{Position: 1, Description: name + " step 2", Tip: "go slow"},
		},
	}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return &recipe
}

// RecipeCount returns the number of stored recipes.
func RecipeCount(t *testing.T, db *gorm.DB) int {
	t.Helper()

	var count int64
	if err := db.Model(&models.Recipe{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count recipes: %v", err)
	}
	return int(count)
}
