package controllers

import (
	"errors"
	"net/http"

	"Forkful/api/models"
	"Forkful/api/utils/httpctx"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// edgeWriter adds or removes one user-restaurant edge and reports whether a
// row changed.
type edgeWriter func(db *gorm.DB, uid, rid uint) (bool, error)

func (server *Server) addRestaurantEdge(c *gin.Context, add edgeWriter, createdMsg, existingMsg string) {
	uid, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "error": "Unauthorized"})
		return
	}
	rid, ok := parseIDParam(c, "restaurantId")
	if !ok {
		return
	}

	created, err := add(server.dbFor(c), uid, rid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "error": "Restaurant not found"})
		return
	}
	if err != nil {
		internalError(c, err, "Error saving restaurant")
		return
	}
	if created {
		invalidateTopRestaurants(c.Request.Context())
	}

	status := http.StatusOK
	message := existingMsg
	if created {
		status = http.StatusCreated
		message = createdMsg
	}
	c.JSON(status, gin.H{
		"status": status,
		"response": gin.H{
			"message":      message,
			"restaurantId": rid,
			"created":      created,
		},
	})
}

func (server *Server) removeRestaurantEdge(c *gin.Context, remove edgeWriter, removedMsg, absentMsg string) {
	uid, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "error": "Unauthorized"})
		return
	}
	rid, ok := parseIDParam(c, "restaurantId")
	if !ok {
		return
	}

	removed, err := remove(server.dbFor(c), uid, rid)
	if err != nil {
		internalError(c, err, "Error saving restaurant")
		return
	}
	if removed {
		invalidateTopRestaurants(c.Request.Context())
	}

	message := absentMsg
	if removed {
		message = removedMsg
	}
	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": gin.H{
			"message":      message,
			"restaurantId": rid,
			"removed":      removed,
		},
	})
}

func (server *Server) AddFavorite(c *gin.Context) {
	server.addRestaurantEdge(c, models.AddFavorite, "Restaurant favorited", "Already favorited")
}

func (server *Server) RemoveFavorite(c *gin.Context) {
	server.removeRestaurantEdge(c, models.RemoveFavorite, "Favorite removed", "Restaurant was not favorited")
}

func (server *Server) AddLike(c *gin.Context) {
	server.addRestaurantEdge(c, models.AddLike, "Restaurant liked", "Already liked")
}

func (server *Server) RemoveLike(c *gin.Context) {
	server.removeRestaurantEdge(c, models.RemoveLike, "Like removed", "Restaurant was not liked")
}
