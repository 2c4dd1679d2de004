package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipeshare/backend/internal/service"
)

// TestingHandler exposes the reset endpoint used by end-to-end test suites.
// It is only registered in the test environment.
type TestingHandler struct {
	users *service.UserService
}

func NewTestingHandler(users *service.UserService) *TestingHandler {
	return &TestingHandler{users: users}
}

func (h *TestingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/testing/reset", h.Reset)
}

func (h *TestingHandler) Reset(c *gin.Context) {
	if err := h.users.ResetAll(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
