package controllers

import (
	"net/http"
	"testing"

	"Forkful/api/auth"
	"Forkful/api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallSecretRefusesEmptyKey(t *testing.T) {
	auth.SetSecret("")
	t.Cleanup(func() { auth.SetSecret("") })

	for _, key := range []string{"", "   "} {
		assert.ErrorIs(t, installSecret(&config.Config{APISecret: key}), errNoAPISecret)
	}
	_, err := auth.CreateToken(1)
	assert.ErrorIs(t, err, auth.ErrNoSecret)

	require.NoError(t, installSecret(&config.Config{APISecret: "configured"}))
	_, err = auth.CreateToken(1)
	assert.NoError(t, err)
}

func TestUnconfiguredSecretLocksOutRequests(t *testing.T) {
	server := setupServer(t)
	user := createUser(t, server.DB, "amy", false)
	token := tokenFor(t, user)

	auth.SetSecret("")
	status, _ := doJSON(t, server, http.MethodPost, path("/api/v1/favorite/%d", 1), nil, token)
	assert.Equal(t, http.StatusUnauthorized, status)
}
