package httpctx

import (
	"Forkful/api/aggregation"

	"github.com/gin-gonic/gin"
)

// CurrentUserID retrieves the authenticated user ID from Gin context if present.
func CurrentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	uid, ok := val.(uint)
	return uid, ok
}

// CurrentViewer is the viewer the request acts for; anonymous unless an auth
// middleware stored a user id.
func CurrentViewer(c *gin.Context) aggregation.Viewer {
	if uid, ok := CurrentUserID(c); ok {
		return aggregation.ViewerOf(uid)
	}
	return aggregation.Anonymous()
}

// IsAdminRequest indicates whether the current request is from an admin.
func IsAdminRequest(c *gin.Context) bool {
	val, exists := c.Get("isAdmin")
	if !exists {
		return false
	}
	isAdmin, ok := val.(bool)
	return ok && isAdmin
}
