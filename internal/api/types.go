package api

import (
	"time"

	"github.com/recipeshare/backend/internal/models"
)

// Request bodies. Validation beyond structural binding happens in the
// services so that the error translator can produce the API's messages.

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token       string `json:"token"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	ID          string `json:"id"`
}

type CreateUserRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type RecipeRequest struct {
	Name             string              `json:"name" binding:"required"`
	ImagePath        string              `json:"imagePath"`
	ShortDescription string              `json:"shortDescription"`
	Description      string              `json:"description"`
	Difficulty       int                 `json:"difficulty" binding:"omitempty,gte=1,lte=5"`
	EstimatedMinutes int                 `json:"estimatedMinutes" binding:"gte=0"`
	Ingredients      []IngredientRequest `json:"ingredients"`
	Steps            []StepRequest       `json:"steps"`
}

type IngredientRequest struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"gte=0"`
	Unit      string  `json:"unit"`
	ImagePath string  `json:"imagePath"`
}

type StepRequest struct {
	Description string `json:"description" binding:"required"`
	Warning     string `json:"warning"`
	Tip         string `json:"tip"`
	ImagePath   string `json:"imagePath"`
}

// toModel builds the recipe entity, preserving the order of nested lists. A
// missing difficulty falls back to the schema default of 1.
func (r RecipeRequest) toModel() *models.Recipe {
	recipe := &models.Recipe{
		Name:             r.Name,
		ImagePath:        r.ImagePath,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		Difficulty:       r.Difficulty,
		EstimatedMinutes: r.EstimatedMinutes,
	}
	if recipe.Difficulty == 0 {
		recipe.Difficulty = 1
	}
	for i, ing := range r.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{
			Position:  i,
			Name:      ing.Name,
			Quantity:  ing.Quantity,
			Unit:      ing.Unit,
			ImagePath: ing.ImagePath,
		})
	}
	for i, step := range r.Steps {
		recipe.Steps = append(recipe.Steps, models.Step{
			Position:    i,
			Description: step.Description,
			Warning:     step.Warning,
			Tip:         step.Tip,
			ImagePath:   step.ImagePath,
		})
	}
	return recipe
}

// Response bodies. Identifiers are rewritten to their opaque string form at
// every nesting level and internal-only fields never leave the process.

type UserResponse struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	ID          string `json:"id"`
}

type RecipeResponse struct {
	Name             string               `json:"name"`
	ImagePath        string               `json:"imagePath"`
	ShortDescription string               `json:"shortDescription"`
	Description      string               `json:"description"`
	Difficulty       int                  `json:"difficulty"`
	EstimatedMinutes int                  `json:"estimatedMinutes"`
	Likes            int                  `json:"likes"`
	User             interface{}          `json:"user"`
	Date             time.Time            `json:"date"`
	Ingredients      []IngredientResponse `json:"ingredients"`
	Steps            []StepResponse       `json:"steps"`
	Comments         []CommentResponse    `json:"comments"`
	ID               string               `json:"id"`
}

type IngredientResponse struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	ImagePath string  `json:"imagePath"`
	ID        string  `json:"id"`
}

type StepResponse struct {
	Description string `json:"description"`
	Warning     string `json:"warning"`
	Tip         string `json:"tip"`
	ImagePath   string `json:"imagePath"`
	ID          string `json:"id"`
}

type CommentResponse struct {
	Text string    `json:"text"`
	User string    `json:"user"`
	Date time.Time `json:"date"`
	ID   string    `json:"id"`
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		ID:          user.ID.String(),
	}
}

// toRecipeResponse serializes a recipe. The user field is the expanded owner
// when it was loaded, otherwise the owner's id string.
func toRecipeResponse(recipe *models.Recipe) RecipeResponse {
	resp := RecipeResponse{
		Name:             recipe.Name,
		ImagePath:        recipe.ImagePath,
		ShortDescription: recipe.ShortDescription,
		Description:      recipe.Description,
		Difficulty:       recipe.Difficulty,
		EstimatedMinutes: recipe.EstimatedMinutes,
		Likes:            recipe.Likes,
		User:             recipe.UserID.String(),
		Date:             recipe.Date,
		Ingredients:      make([]IngredientResponse, 0, len(recipe.Ingredients)),
		Steps:            make([]StepResponse, 0, len(recipe.Steps)),
		Comments:         make([]CommentResponse, 0, len(recipe.Comments)),
		ID:               recipe.ID.String(),
	}
	if recipe.User != nil {
		resp.User = toUserResponse(recipe.User)
	}
	for _, ing := range recipe.Ingredients {
		resp.Ingredients = append(resp.Ingredients, IngredientResponse{
			Name:      ing.Name,
			Quantity:  ing.Quantity,
			Unit:      ing.Unit,
			ImagePath: ing.ImagePath,
			ID:        ing.ID.String(),
		})
	}
	for _, step := range recipe.Steps {
		resp.Steps = append(resp.Steps, StepResponse{
			Description: step.Description,
			Warning:     step.Warning,
			Tip:         step.Tip,
			ImagePath:   step.ImagePath,
			ID:          step.ID.String(),
		})
	}
	for _, comment := range recipe.Comments {
		resp.Comments = append(resp.Comments, CommentResponse{
			Text: comment.Text,
			User: comment.UserID.String(),
			Date: comment.Date,
			ID:   comment.ID.String(),
		})
	}
	return resp
}
