package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResetPassword(t *testing.T) {
	html, text, err := RenderResetPassword("Forkful", "http://localhost:3000", "http://localhost:3000/resetpassword/abc")
	require.NoError(t, err)
	assert.Contains(t, html, "resetpassword/abc")
	assert.Contains(t, text, "resetpassword/abc")
}

func TestNewSendGridRequiresKey(t *testing.T) {
	_, err := NewSendGrid(Config{From: "no-reply@forkful.app"})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}
