package controllers

import (
	"errors"
	"net/http"

	"Forkful/api/aggregation"
	"Forkful/api/models"
	"Forkful/api/utils/httpctx"

	"github.com/gin-gonic/gin"
)

// AddFollowing makes the authenticated user follow :userId.
func (server *Server) AddFollowing(c *gin.Context) {
	requestorID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "error": "Unauthorized"})
		return
	}
	targetID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	created, err := models.Follow(server.dbFor(c), requestorID, targetID)
	if errors.Is(err, aggregation.ErrSelfFollow) {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "error": "You cannot follow yourself"})
		return
	}
	if errors.Is(err, models.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "error": "User not found"})
		return
	}
	if err != nil {
		internalError(c, err, "Error following user")
		return
	}
	if created {
		invalidateTopUsers(c.Request.Context())
	}

	status := http.StatusOK
	message := "Already following user"
	if created {
		status = http.StatusCreated
		message = "User followed successfully"
	}
	c.JSON(status, gin.H{
		"status": status,
		"response": gin.H{
			"message": message,
			"userId":  targetID,
			"created": created,
		},
	})
}

// RemoveFollowing drops the edge if it exists; a missing edge is not an error.
func (server *Server) RemoveFollowing(c *gin.Context) {
	requestorID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "error": "Unauthorized"})
		return
	}
	targetID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if err := aggregation.ValidateFollow(requestorID, targetID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "error": "You cannot unfollow yourself"})
		return
	}

	removed, err := models.Unfollow(server.dbFor(c), requestorID, targetID)
	if err != nil {
		internalError(c, err, "Error unfollowing user")
		return
	}
	if removed {
		invalidateTopUsers(c.Request.Context())
	}

	message := "Not following user"
	if removed {
		message = "User unfollowed successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": gin.H{
			"message": message,
			"userId":  targetID,
			"removed": removed,
		},
	})
}
