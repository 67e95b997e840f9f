package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"Forkful/api/models"

	"github.com/gin-gonic/gin"
	"github.com/twinj/uuid"
)

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token          string `json:"token"`
	NewPassword    string `json:"new_password"`
	RetypePassword string `json:"retype_password"`
}

// ForgotPassword stores a single-use reset token and emails the reset link.
func (server *Server) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Cannot unmarshal body",
		})
		return
	}

	user := models.User{Email: req.Email}
	user.Prepare()
	if errorMessages := user.Validate("forgotpassword"); len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	db := server.dbFor(c)
	if _, err := models.FindUserByEmail(db, user.Email); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"status": http.StatusUnprocessableEntity,
				"error":  map[string]string{"No_email": "Sorry, we do not recognize this email"},
			})
			return
		}
		internalError(c, err, "Error resetting password")
		return
	}
	if server.Mailer == nil {
		internalError(c, errors.New("mailer not configured"), "Password reset is not available")
		return
	}

	reset := models.ResetPassword{Email: user.Email, Token: uuid.NewV4().String()}
	if _, err := reset.SaveDetails(db); err != nil {
		internalError(c, err, "Error resetting password")
		return
	}

	link := strings.TrimRight(server.appURL(), "/") + "/resetpassword/" + reset.Token
	if err := server.Mailer.SendResetPassword(reset.Email, link); err != nil {
		internalError(c, err, "Error sending reset email")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": "Success, please check your email",
	})
}

// ResetPassword sets a new password for the account a valid token belongs
// to and consumes the token.
func (server *Server) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Cannot unmarshal body",
		})
		return
	}

	errorMessages := make(map[string]string)
	if req.NewPassword == "" || req.RetypePassword == "" {
		errorMessages["Empty_passwords"] = "Please ensure both fields are entered"
	}
	if req.NewPassword != "" && len(req.NewPassword) < 6 {
		errorMessages["Invalid_Passwords"] = "Password should be at least 6 characters"
	}
	if req.NewPassword != req.RetypePassword {
		errorMessages["Password_unequal"] = "Passwords provided do not match"
	}
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	db := server.dbFor(c)
	reset, err := models.FindResetByToken(db, req.Token, time.Now())
	if err != nil {
		if errors.Is(err, models.ErrInvalidResetToken) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"status": http.StatusUnprocessableEntity,
				"error":  map[string]string{"Invalid_token": "Invalid link. Try requesting again"},
			})
			return
		}
		internalError(c, err, "Error resetting password")
		return
	}

	if err := models.UpdatePassword(db, reset.Email, req.NewPassword); err != nil {
		internalError(c, err, "Error resetting password")
		return
	}
	if _, err := reset.DeleteDetails(db); err != nil {
		logFor(c).Warn().Err(err).Msg("reset token not deleted")
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": "Success",
	})
}

func (server *Server) appURL() string {
	if server.Config == nil {
		return ""
	}
	return server.Config.AppURL
}
