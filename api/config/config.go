package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Database struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN returns the postgres connection string. DATABASE_URL wins in
// production and gets sslmode=require unless it already names a mode.
func (d Database) DSN(production bool) string {
	if production && d.URL != "" {
		dsn := d.URL
		if !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
		return dsn
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port,
	)
}

type Config struct {
	AppEnv        string
	Port          string
	AppURL        string
	APISecret     string
	AdminEmail    string
	AdminPassword string
	SentryDSN     string
	DB            Database
	Redis         Redis
	S3            S3
	Mail          Mail
	Log           Log
	Listing       Listing
}

type Redis struct {
	URL      string
	Addr     string
	Username string
	Password string
}

type S3 struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type Mail struct {
	SendGridKey string
	From        string
	FromName    string
}

type Log struct {
	Level  string
	Pretty bool
}

// Listing holds the sizes used by paged listings and rankings.
type Listing struct {
	PageSize        int
	TopN            int
	FeedSize        int
	RankingCacheTTL time.Duration
}

// DefaultListing is used when no configuration was loaded.
func DefaultListing() Listing {
	return Listing{
		PageSize:        10,
		TopN:            10,
		FeedSize:        10,
		RankingCacheTTL: 60 * time.Second,
	}
}

func (c *Config) Production() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Load reads a .env file outside production, then resolves every key from
// the environment with defaults applied.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	if !strings.EqualFold(v.GetString("APP_ENV"), "production") {
		_ = godotenv.Load()
	}

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("API_PORT", "8888")
	v.SetDefault("APP_URL", "http://localhost:3000")
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("AWS_REGION", "us-east-2")
	v.SetDefault("MAIL_FROM", "no-reply@forkful.app")
	v.SetDefault("MAIL_FROM_NAME", "Forkful")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PAGE_SIZE", 10)
	v.SetDefault("TOP_N", 10)
	v.SetDefault("FEED_SIZE", 10)
	v.SetDefault("RANKING_CACHE_TTL", "60s")

	port := v.GetString("PORT")
	if port == "" {
		port = v.GetString("API_PORT")
	}

	return &Config{
		AppEnv:        v.GetString("APP_ENV"),
		Port:          strings.TrimSpace(port),
		AppURL:        v.GetString("APP_URL"),
		APISecret:     v.GetString("API_SECRET"),
		AdminEmail:    v.GetString("ADMIN_EMAIL"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		SentryDSN:     v.GetString("SENTRY_DSN"),
		DB: Database{
			URL:      v.GetString("DATABASE_URL"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Redis: Redis{
			URL:      v.GetString("REDIS_URL"),
			Addr:     v.GetString("REDIS_ADDR"),
			Username: v.GetString("REDIS_USERNAME"),
			Password: v.GetString("REDIS_PASSWORD"),
		},
		S3: S3{
			Bucket:          strings.SplitN(v.GetString("S3_BUCKET"), "/", 2)[0],
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		},
		Mail: Mail{
			SendGridKey: v.GetString("SENDGRID_API_KEY"),
			From:        v.GetString("MAIL_FROM"),
			FromName:    v.GetString("MAIL_FROM_NAME"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
		Listing: Listing{
			PageSize:        v.GetInt("PAGE_SIZE"),
			TopN:            v.GetInt("TOP_N"),
			FeedSize:        v.GetInt("FEED_SIZE"),
			RankingCacheTTL: v.GetDuration("RANKING_CACHE_TTL"),
		},
	}
}
