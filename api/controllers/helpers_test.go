package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"Forkful/api/auth"
	"Forkful/api/cache"
	"Forkful/api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeUploader struct {
	mu   sync.Mutex
	keys []string
}

func (f *fakeUploader) Upload(_ context.Context, key string, body []byte, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	return "https://bucket.example/" + key, nil
}

type sentMail struct {
	to   string
	link string
}

type fakeMailer struct {
	sent []sentMail
}

func (f *fakeMailer) SendResetPassword(to, link string) error {
	f.sent = append(f.sent, sentMail{to: to, link: link})
	return nil
}

// setupServer builds a server over a fresh in-memory database with the
// production routes mounted.
func setupServer(t *testing.T) *Server {
	t.Helper()
	auth.SetSecret("forkful-test-secret")
	gin.SetMode(gin.TestMode)
	cache.Client = nil

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.Migrate(db))

	server := &Server{DB: db}
	server.Router = gin.New()
	server.initializeRoutes()
	return server
}

func createUser(t *testing.T, db *gorm.DB, name string, admin bool) models.User {
	t.Helper()
	u := models.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: "password123",
		IsAdmin:  admin,
	}
	_, err := u.SaveUser(db)
	require.NoError(t, err)
	return u
}

func createCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	c := models.Category{Name: name}
	_, err := c.SaveCategory(db)
	require.NoError(t, err)
	return c
}

func createRestaurant(t *testing.T, db *gorm.DB, name string, categoryID uint) models.Restaurant {
	t.Helper()
	r := models.Restaurant{
		Name:        name,
		Description: "Fresh food cooked daily",
		Image:       "https://img.example/" + name + ".png",
		CategoryID:  categoryID,
	}
	_, err := r.SaveRestaurant(db)
	require.NoError(t, err)
	return r
}

func tokenFor(t *testing.T, u models.User) string {
	t.Helper()
	token, err := auth.CreateToken(u.ID)
	require.NoError(t, err)
	return token
}

// doJSON performs a request and decodes the envelope.
func doJSON(t *testing.T, server *Server, method, path string, body interface{}, token string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	server.Router.ServeHTTP(w, req)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "body: %s", w.Body.String())
	return w.Code, envelope
}

func responseMap(t *testing.T, envelope map[string]interface{}) map[string]interface{} {
	t.Helper()
	m, ok := envelope["response"].(map[string]interface{})
	require.True(t, ok, "response is not an object: %v", envelope)
	return m
}

func responseList(t *testing.T, envelope map[string]interface{}) []interface{} {
	t.Helper()
	l, ok := envelope["response"].([]interface{})
	require.True(t, ok, "response is not a list: %v", envelope)
	return l
}

func path(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

func idOf(v interface{}) uint {
	return uint(v.(map[string]interface{})["id"].(float64))
}
