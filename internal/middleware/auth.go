package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// userIDKey is the gin context key holding the authenticated caller's id.
const userIDKey = "user_id"

// TokenValidator verifies a bearer token and returns the caller's user id.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

// TokenExtractor validates the bearer token when one is presented and
// stashes the caller id in the context. Presenting no token is fine -- the
// handlers that need a caller reject the request themselves -- but a token
// that fails verification aborts the request regardless of the route.
func TokenExtractor(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		userID, err := validator.ValidateToken(token)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CallerID returns the authenticated caller's id, or uuid.Nil when the
// request carried no valid token.
func CallerID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

func bearerToken(header string) string {
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return header[7:]
	}
	return ""
}
