package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipeshare/backend/internal/models"
	"github.com/recipeshare/backend/internal/pagination"
	"github.com/recipeshare/backend/internal/service"
)

const defaultUsersPerPage = 100

type UserHandler struct {
	db    *gorm.DB
	users *service.UserService
}

func NewUserHandler(db *gorm.DB, users *service.UserService) *UserHandler {
	return &UserHandler{db: db, users: users}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.GET("/id/:id", h.GetUserByID)
		users.GET("/user/:username", h.GetUserByUsername)
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	items, meta, err := pagination.Paginate[models.User](
		h.db, c.Query("page"), c.Query("itemsperpage"), defaultUsersPerPage)
	if err != nil {
		_ = c.Error(err)
		return
	}

	results := make([]UserResponse, 0, len(items))
	for i := range items {
		results = append(results, toUserResponse(&items[i]))
	}

	c.JSON(http.StatusOK, pagination.Page[UserResponse]{
		Pagination: meta,
		Results:    results,
	})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(service.ValidationError{Message: err.Error()})
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Username, req.DisplayName, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(service.ErrMalformedID)
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	user, err := h.users.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
