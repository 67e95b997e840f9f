package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

const tokenLifetime = 24 * time.Hour

var (
	ErrMissingToken = errors.New("missing token")
	ErrNoSecret     = errors.New("token signing secret not configured")
)

var (
	secretMu   sync.RWMutex
	signingKey []byte
)

// SetSecret installs the HMAC key used to sign and verify tokens. Until a
// non-empty key is set every token operation fails with ErrNoSecret.
func SetSecret(key string) {
	secretMu.Lock()
	defer secretMu.Unlock()
	signingKey = []byte(key)
}

func secret() ([]byte, error) {
	secretMu.RLock()
	defer secretMu.RUnlock()
	if len(signingKey) == 0 {
		return nil, ErrNoSecret
	}
	return signingKey, nil
}

func CreateToken(userID uint) (string, error) {
	key, err := secret()
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["user_id"] = userID
	claims["exp"] = time.Now().Add(tokenLifetime).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

func parse(r *http.Request) (*jwt.Token, error) {
	tokenString := ExtractToken(r)
	if tokenString == "" {
		return nil, ErrMissingToken
	}
	key, err := secret()
	if err != nil {
		return nil, err
	}
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
}

func TokenValid(r *http.Request) error {
	_, err := parse(r)
	return err
}

// ExtractToken reads the bearer token from the Authorization header, falling
// back to the token query parameter.
func ExtractToken(r *http.Request) string {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return r.URL.Query().Get("token")
}

func ExtractTokenID(r *http.Request) (uint, error) {
	token, err := parse(r)
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token")
	}
	uid, err := strconv.ParseUint(fmt.Sprintf("%.0f", claims["user_id"]), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(uid), nil
}
