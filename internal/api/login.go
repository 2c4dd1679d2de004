package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipeshare/backend/internal/service"
)

type LoginHandler struct {
	auth *service.AuthService
}

func NewLoginHandler(auth *service.AuthService) *LoginHandler {
	return &LoginHandler{auth: auth}
}

func (h *LoginHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("", h.Login)
}

func (h *LoginHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(service.ValidationError{Message: err.Error()})
		return
	}

	result, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:       result.Token,
		Username:    result.Username,
		DisplayName: result.DisplayName,
		ID:          result.UserID.String(),
	})
}
