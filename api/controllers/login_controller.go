package controllers

import (
	"net/http"

	"Forkful/api/auth"
	"Forkful/api/models"
	"Forkful/api/security"
	"Forkful/api/utils/formaterror"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	PasswordCheck string `json:"passwordCheck"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers an account after checking the password confirmation and
// that the email is free.
func (server *Server) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Cannot unmarshal body",
		})
		return
	}

	user := models.User{Name: req.Name, Email: req.Email, Password: req.Password}
	user.Prepare()
	errorMessages := user.Validate("")
	if req.PasswordCheck != req.Password {
		errorMessages["Mismatch_password"] = "Passwords do not match"
	}
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	db := server.dbFor(c)
	taken, err := models.EmailTaken(db, user.Email)
	if err != nil {
		internalError(c, err, "Error creating user")
		return
	}
	if taken {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  map[string]string{"Taken_email": "Email Already Taken"},
		})
		return
	}

	created, err := user.SaveUser(db)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  formaterror.FormatError(err.Error()),
		})
		return
	}
	invalidateTopUsers(c.Request.Context())

	c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "response": created})
}

// SignIn checks the credentials and returns a token with the user summary.
func (server *Server) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Cannot unmarshal body",
		})
		return
	}

	user := models.User{Email: req.Email, Password: req.Password}
	user.Prepare()
	if errorMessages := user.Validate("login"); len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	userData, err := server.signIn(c, user.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  formaterror.FormatError(err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": userData})
}

func (server *Server) signIn(c *gin.Context, email, password string) (map[string]interface{}, error) {
	user, err := models.FindUserByEmail(server.dbFor(c), email)
	if err != nil {
		logFor(c).Debug().Err(err).Msg("sign in: user lookup failed")
		return nil, err
	}
	if err := security.VerifyPassword(user.Password, password); err != nil {
		logFor(c).Debug().Err(err).Uint("user_id", user.ID).Msg("sign in: password mismatch")
		return nil, err
	}
	token, err := auth.CreateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"token":   token,
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"image":   user.Image,
		"isAdmin": user.IsAdmin,
	}, nil
}
