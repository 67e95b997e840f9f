package controllers

import (
	"errors"
	"net/http"

	"Forkful/api/models"
	"Forkful/api/utils/httpctx"

	"github.com/gin-gonic/gin"
)

type commentRequest struct {
	Text         string `json:"text"`
	RestaurantID uint   `json:"restaurantId"`
}

// CreateComment posts a comment on a restaurant as the authenticated user.
func (server *Server) CreateComment(c *gin.Context) {
	uid, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "error": "Unauthorized"})
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Cannot unmarshal body",
		})
		return
	}

	comment := models.Comment{Text: req.Text, UserID: uid, RestaurantID: req.RestaurantID}
	comment.Prepare()
	if errorMessages := comment.Validate(); len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	db := server.dbFor(c)
	if _, err := models.FindRestaurantByID(db, comment.RestaurantID); err != nil {
		if errors.Is(err, models.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "error": "Restaurant not found"})
			return
		}
		internalError(c, err, "Error creating comment")
		return
	}

	created, err := comment.SaveComment(db)
	if err != nil {
		internalError(c, err, "Error creating comment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "response": created})
}

// DeleteComment removes a comment. Admin only.
func (server *Server) DeleteComment(c *gin.Context) {
	cid, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	db := server.dbFor(c)

	comment, err := models.FindCommentByID(db, cid)
	if err != nil {
		if errors.Is(err, models.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "error": "Comment not found"})
			return
		}
		internalError(c, err, "Error deleting comment")
		return
	}

	if _, err := comment.DeleteAComment(db); err != nil {
		internalError(c, err, "Error deleting comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Comment deleted"})
}
