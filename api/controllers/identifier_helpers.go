package controllers

import (
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive numeric path parameter. On failure it writes
// a 400 response and returns false.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusBadRequest,
			"error":  "Invalid " + name,
		})
		return 0, false
	}
	return uint(id), true
}

// parseIDQuery reads an optional numeric query parameter; anything else is 0.
func parseIDQuery(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

func internalError(c *gin.Context, err error, message string) {
	logFor(c).Error().Err(err).Msg(message)
	sentry.CaptureException(err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"status": http.StatusInternalServerError,
		"error":  message,
	})
}
