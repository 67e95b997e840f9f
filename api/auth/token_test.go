package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withSecret(t *testing.T, key string) {
	t.Helper()
	SetSecret(key)
	t.Cleanup(func() { SetSecret("") })
}

func TestCreateAndExtractToken(t *testing.T) {
	withSecret(t, "test-secret")

	token, err := CreateToken(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	assert.NoError(t, TokenValid(req))
	uid, err := ExtractTokenID(req)
	require.NoError(t, err)
	assert.Equal(t, uint(42), uid)
}

func TestExtractTokenPrefersHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?token=abc", nil)
	assert.Equal(t, "abc", ExtractToken(req))

	req.Header.Set("Authorization", "Bearer from-header")
	assert.Equal(t, "from-header", ExtractToken(req))

	req.Header.Set("Authorization", "Basic xyz")
	assert.Equal(t, "abc", ExtractToken(req))
}

func TestExtractTokenIDRejectsBadTokens(t *testing.T) {
	withSecret(t, "test-secret")

	missing := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := ExtractTokenID(missing)
	assert.ErrorIs(t, err, ErrMissingToken)

	token, err := CreateToken(7)
	require.NoError(t, err)
	SetSecret("rotated")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	_, err = ExtractTokenID(req)
	assert.Error(t, err)
}

func TestEmptySecretRejectsEveryToken(t *testing.T) {
	SetSecret("")

	_, err := CreateToken(1)
	assert.ErrorIs(t, err, ErrNoSecret)

	// a token signed with the empty key must not authenticate anyone
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 1})
	signed, err := forged.SignedString([]byte(""))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	id, err := ExtractTokenID(req)
	assert.ErrorIs(t, err, ErrNoSecret)
	assert.Zero(t, id)
}
