package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipeshare/backend/internal/service"
)

// ErrorResponse is the envelope for every error the API returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler is the single place domain errors become HTTP responses.
// Handlers attach errors to the context and return; the translation table
// lives here. Note that a caller that is not the recipe's owner gets the
// same 401 as an unauthenticated one -- that status choice is part of the
// public interface.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var validationErr service.ValidationError
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, service.ErrTokenMissing):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: service.ErrTokenMissing.Error()})
		case errors.Is(err, service.ErrPermissionDenied):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: service.ErrPermissionDenied.Error()})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: service.ErrInvalidCredentials.Error()})
		case errors.Is(err, service.ErrInvalidToken):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: service.ErrInvalidToken.Error()})
		case errors.Is(err, service.ErrTokenExpired):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: service.ErrTokenExpired.Error()})
		case errors.Is(err, service.ErrMalformedID):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: service.ErrMalformedID.Error()})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
		default:
			log.Printf("unhandled error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		}
	}
}
