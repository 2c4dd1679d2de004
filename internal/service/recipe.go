package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipeshare/backend/internal/models"
)

// RecipeService handles recipe operations and enforces the ownership rule:
// only the creating user may update or delete a recipe. Liking is exempt and
// open to any authenticated user.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// resolveCaller maps a caller id from a bearer token onto an existing user.
// A zero id (no token presented) and an id with no matching user are the
// same failure.
func (s *RecipeService) resolveCaller(ctx context.Context, callerID uuid.UUID) (*models.User, error) {
	if callerID == uuid.Nil {
		return nil, ErrTokenMissing
	}
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", callerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenMissing
		}
		return nil, err
	}
	return &user, nil
}

// Get retrieves a recipe with its owner and nested entities loaded.
func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.withChildren(s.db.WithContext(ctx)).
		Preload("User").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Create stores a new recipe owned by the caller. Likes start at zero and
// the creation date is set server-side.
func (s *RecipeService) Create(ctx context.Context, callerID uuid.UUID, recipe *models.Recipe) (*models.Recipe, error) {
	caller, err := s.resolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	recipe.UserID = caller.ID
	recipe.Likes = 0
	recipe.Date = time.Now()
	recipe.Comments = []models.Comment{}

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// Update replaces a recipe's fields and its ingredient and step lists.
// Evaluation order: resolve caller, fetch recipe, not-found, ownership.
func (s *RecipeService) Update(ctx context.Context, callerID, id uuid.UUID, updated *models.Recipe) (*models.Recipe, error) {
	caller, err := s.resolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if recipe.UserID != caller.ID {
		return nil, ErrPermissionDenied
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&recipe).Updates(map[string]interface{}{
			"name":              updated.Name,
			"image_path":        updated.ImagePath,
			"short_description": updated.ShortDescription,
			"description":       updated.Description,
			"difficulty":        updated.Difficulty,
			"estimated_minutes": updated.EstimatedMinutes,
		}).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Step{}).Error; err != nil {
			return err
		}

		for i := range updated.Ingredients {
			updated.Ingredients[i].RecipeID = recipe.ID
			updated.Ingredients[i].Position = i
			if err := tx.Create(&updated.Ingredients[i]).Error; err != nil {
				return err
			}
		}
		for i := range updated.Steps {
			updated.Steps[i].RecipeID = recipe.ID
			updated.Steps[i].Position = i
			if err := tx.Create(&updated.Steps[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var result models.Recipe
	if err := s.withChildren(s.db.WithContext(ctx)).First(&result, "id = ?", recipe.ID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a recipe and everything nested in it.
func (s *RecipeService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	caller, err := s.resolveCaller(ctx, callerID)
	if err != nil {
		return err
	}

	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if recipe.UserID != caller.ID {
		return ErrPermissionDenied
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Step{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

// Like increments a recipe's like counter by one on behalf of any
// authenticated user. The increment is a read-then-write against the store;
// concurrent likes may lose updates, matching the store-level atomicity this
// system relies on.
func (s *RecipeService) Like(ctx context.Context, callerID, id uuid.UUID) (*models.Recipe, error) {
	if _, err := s.resolveCaller(ctx, callerID); err != nil {
		return nil, err
	}

	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&recipe).Update("likes", recipe.Likes+1).Error; err != nil {
		return nil, err
	}

	var result models.Recipe
	if err := s.withChildren(s.db.WithContext(ctx)).First(&result, "id = ?", recipe.ID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// withChildren preloads the ordered nested entities of a recipe.
func (s *RecipeService) withChildren(db *gorm.DB) *gorm.DB {
	ordered := func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}
	return db.
		Preload("Ingredients", ordered).
		Preload("Steps", ordered).
		Preload("Comments", ordered)
}
