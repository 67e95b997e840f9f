package controllers

import (
	"errors"
	"net/http"

	"Forkful/api/models"

	"github.com/gin-gonic/gin"
)

func (server *Server) AdminGetRestaurants(c *gin.Context) {
	restaurants, err := models.FindAllRestaurants(server.dbFor(c))
	if err != nil {
		internalError(c, err, "Error loading restaurants")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": restaurants})
}

func (server *Server) AdminGetRestaurant(c *gin.Context) {
	rid, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	restaurant, err := models.FindRestaurantByID(server.dbFor(c), rid)
	if err != nil {
		if errors.Is(err, models.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "error": "Restaurant not found"})
			return
		}
		internalError(c, err, "Error loading restaurant")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": restaurant})
}

func (server *Server) AdminGetCategories(c *gin.Context) {
	categories, err := models.FindAllCategories(server.dbFor(c))
	if err != nil {
		internalError(c, err, "Error loading categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": categories})
}

func (server *Server) AdminGetCategory(c *gin.Context) {
	cid, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	category, err := models.FindCategoryByID(server.dbFor(c), cid)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "error": "Category not found"})
			return
		}
		internalError(c, err, "Error loading category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": category})
}
