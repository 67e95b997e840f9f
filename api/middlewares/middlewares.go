package middlewares

import (
	"net/http"

	"Forkful/api/auth"
	"Forkful/api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TokenAuthMiddleware rejects requests without a valid token for an existing
// user and exposes userID and isAdmin to handlers.
func TokenAuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := auth.ExtractTokenID(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status": http.StatusUnauthorized,
				"error":  "Unauthorized",
			})
			return
		}

		var user models.User
		if err := db.Select("id", "is_admin").First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status": http.StatusUnauthorized,
				"error":  "Unauthorized",
			})
			return
		}

		c.Set("userID", user.ID)
		c.Set("isAdmin", user.IsAdmin)
		c.Next()
	}
}

// CORSMiddleware lets the configured frontend origin call the API with
// credentials.
func CORSMiddleware(allowedOrigins ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		for _, o := range allowedOrigins {
			if o == origin {
				c.Writer.Header().Set("Access-Control-Allow-Origin", o)
				break
			}
		}

		c.Writer.Header().Set("Vary", "Origin")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, Content-Length, X-CSRF-Token, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods",
			"POST, GET, OPTIONS, PUT, PATCH, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// OptionalAuthMiddleware resolves the viewer when a valid token is present
// and lets anonymous requests through untouched.
func OptionalAuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := auth.ExtractTokenID(c.Request)
		if err == nil {
			var user models.User
			if err := db.Select("id", "is_admin").First(&user, userID).Error; err == nil {
				c.Set("userID", user.ID)
				c.Set("isAdmin", user.IsAdmin)
			}
		}
		c.Next()
	}
}
