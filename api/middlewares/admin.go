package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware must run after TokenAuthMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isAdmin, ok := c.Get("isAdmin"); ok {
			if flag, ok := isAdmin.(bool); ok && flag {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"status": http.StatusForbidden,
			"error":  "Forbidden",
		})
	}
}
