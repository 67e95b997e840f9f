package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "")
	t.Setenv("API_PORT", "")
	t.Setenv("TOP_N", "")

	cfg := Load()
	assert.True(t, cfg.Production())
	assert.Equal(t, "8888", cfg.Port)
	assert.Equal(t, 10, cfg.Listing.TopN)
	assert.Equal(t, 10, cfg.Listing.PageSize)
	assert.Equal(t, 60*time.Second, cfg.Listing.RankingCacheTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("TOP_N", "5")
	t.Setenv("S3_BUCKET", "pics/avatars")
	t.Setenv("API_SECRET", "s3cret")

	cfg := Load()
	assert.Equal(t, "s3cret", cfg.APISecret)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 5, cfg.Listing.TopN)
	assert.Equal(t, "pics", cfg.S3.Bucket)
}

func TestDatabaseDSN(t *testing.T) {
	db := Database{URL: "postgres://u:p@h/db", Host: "h", Port: "5432", User: "u", Password: "p", Name: "db"}

	assert.Equal(t, "postgres://u:p@h/db?sslmode=require", db.DSN(true))
	assert.Contains(t, db.DSN(false), "host=h user=u password=p dbname=db port=5432 sslmode=disable")

	db.URL = "postgres://u:p@h/db?sslmode=verify-full"
	assert.Equal(t, db.URL, db.DSN(true))
}

func TestDefaultListing(t *testing.T) {
	l := DefaultListing()
	assert.Equal(t, 10, l.PageSize)
	assert.Equal(t, 10, l.TopN)
	assert.Equal(t, 10, l.FeedSize)
}
