package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipeshare/backend/internal/middleware"
	"github.com/recipeshare/backend/internal/models"
	"github.com/recipeshare/backend/internal/pagination"
	"github.com/recipeshare/backend/internal/service"
)

const defaultRecipesPerPage = 10

type RecipeHandler struct {
	db      *gorm.DB
	recipes *service.RecipeService
}

func NewRecipeHandler(db *gorm.DB, recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{db: db, recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.CreateRecipe)
		recipes.GET("/id/:id", h.GetRecipe)
		recipes.PUT("/id/:id", h.UpdateRecipe)
		recipes.DELETE("/id/:id", h.DeleteRecipe)
		recipes.PUT("/like/:id", h.LikeRecipe)
	}
}

func orderedByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	opts := []pagination.Option{
		pagination.WithPreload("User"),
		pagination.WithPreload("Ingredients", orderedByPosition),
		pagination.WithPreload("Steps", orderedByPosition),
		pagination.WithPreload("Comments", orderedByPosition),
	}

	// lastest and popular combine, date taking precedence over likes.
	if c.Query("lastest") != "" {
		opts = append(opts, pagination.WithOrder("date DESC"))
	}
	if c.Query("popular") != "" {
		opts = append(opts, pagination.WithOrder("likes DESC"))
	}

	items, meta, err := pagination.Paginate[models.Recipe](
		h.db, c.Query("page"), c.Query("itemsperpage"), defaultRecipesPerPage, opts...)
	if err != nil {
		_ = c.Error(err)
		return
	}

	results := make([]RecipeResponse, 0, len(items))
	for i := range items {
		results = append(results, toRecipeResponse(&items[i]))
	}

	c.JSON(http.StatusOK, pagination.Page[RecipeResponse]{
		Pagination: meta,
		Results:    results,
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(service.ErrMalformedID)
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(service.ValidationError{Message: err.Error()})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), middleware.CallerID(c), req.toModel())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(service.ErrMalformedID)
		return
	}

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(service.ValidationError{Message: err.Error()})
		return
	}

	recipe, err := h.recipes.Update(c.Request.Context(), middleware.CallerID(c), id, req.toModel())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(service.ErrMalformedID)
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), middleware.CallerID(c), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) LikeRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(service.ErrMalformedID)
		return
	}

	recipe, err := h.recipes.Like(c.Request.Context(), middleware.CallerID(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}
