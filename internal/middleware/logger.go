package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs the method and path of every request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		log.Printf("Method: %s", c.Request.Method)
		log.Printf("Path:   %s", c.Request.URL.Path)
		log.Printf("---")
		c.Next()
	}
}
