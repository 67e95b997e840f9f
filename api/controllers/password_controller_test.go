package controllers

import (
	"net/http"
	"strings"
	"testing"

	"Forkful/api/config"
	"Forkful/api/models"
	"Forkful/api/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForgotPasswordUnknownEmail(t *testing.T) {
	server := setupServer(t)
	mailer := &fakeMailer{}
	server.Mailer = mailer

	status, body := doJSON(t, server, http.MethodPost, "/api/v1/password/forgot", map[string]string{
		"email": "ghost@example.com",
	}, "")
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body["error"], "No_email")
	assert.Empty(t, mailer.sent)

	status, _ = doJSON(t, server, http.MethodPost, "/api/v1/password/forgot", map[string]string{
		"email": "not-an-email",
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestForgotPasswordWithoutMailer(t *testing.T) {
	server := setupServer(t)
	user := createUser(t, server.DB, "amy", false)

	status, _ := doJSON(t, server, http.MethodPost, "/api/v1/password/forgot", map[string]string{
		"email": user.Email,
	}, "")
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestPasswordResetFlow(t *testing.T) {
	server := setupServer(t)
	server.Config = &config.Config{AppURL: "https://forkful.example/"}
	mailer := &fakeMailer{}
	server.Mailer = mailer
	user := createUser(t, server.DB, "amy", false)

	status, _ := doJSON(t, server, http.MethodPost, "/api/v1/password/forgot", map[string]string{
		"email": user.Email,
	}, "")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, user.Email, mailer.sent[0].to)
	prefix := "https://forkful.example/resetpassword/"
	require.True(t, strings.HasPrefix(mailer.sent[0].link, prefix), mailer.sent[0].link)
	token := strings.TrimPrefix(mailer.sent[0].link, prefix)

	reset := map[string]string{
		"token":           token,
		"new_password":    "brand-new-secret",
		"retype_password": "brand-new-secret",
	}
	status, _ = doJSON(t, server, http.MethodPost, "/api/v1/password/reset", reset, "")
	require.Equal(t, http.StatusOK, status)

	stored, err := models.FindUserByID(server.DB, user.ID)
	require.NoError(t, err)
	assert.NoError(t, security.VerifyPassword(stored.Password, "brand-new-secret"))

	// a token works once
	status, body := doJSON(t, server, http.MethodPost, "/api/v1/password/reset", reset, "")
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body["error"], "Invalid_token")
}

func TestResetPasswordValidation(t *testing.T) {
	server := setupServer(t)

	status, body := doJSON(t, server, http.MethodPost, "/api/v1/password/reset", map[string]string{
		"token":           "whatever",
		"new_password":    "abc",
		"retype_password": "abd",
	}, "")
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body["error"], "Invalid_Passwords")
	assert.Contains(t, body["error"], "Password_unequal")
}
