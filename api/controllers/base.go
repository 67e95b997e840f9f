package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"Forkful/api/auth"
	"Forkful/api/cache"
	"Forkful/api/config"
	"Forkful/api/logging"
	"Forkful/api/mailer"
	"Forkful/api/middlewares"
	"Forkful/api/models"
	"Forkful/api/storage"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Config   *config.Config
	Uploader storage.ImageUploader
	Mailer   mailer.Sender
}

// seedAdmin creates the admin named by ADMIN_EMAIL / ADMIN_PASSWORD, or
// restores the admin flag on an existing account.
func seedAdmin(db *gorm.DB, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		logging.L().Info().Msg("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin creation")
		return nil
	}

	existing, err := models.FindUserByEmail(db, email)
	if errors.Is(err, models.ErrUserNotFound) {
		logging.L().Info().Str("email", email).Msg("creating initial admin")

		admin := models.User{
			Name:     strings.Split(email, "@")[0],
			Email:    email,
			Password: password,
		}
		admin.Prepare()
		admin.IsAdmin = true

		if msgs := admin.Validate(""); len(msgs) > 0 {
			logging.L().Warn().Interface("errors", msgs).Msg("admin validation failed")
			return nil
		}
		_, err = admin.SaveUser(db)
		return err
	}
	if err != nil {
		return err
	}

	if !existing.IsAdmin {
		return db.Model(&models.User{}).Where("id = ?", existing.ID).Update("is_admin", true).Error
	}
	return nil
}

var errNoAPISecret = errors.New("API_SECRET must be set")

// installSecret hands the token signing key to auth. An empty key would let
// anyone sign tokens, so it is refused.
func installSecret(cfg *config.Config) error {
	if strings.TrimSpace(cfg.APISecret) == "" {
		return errNoAPISecret
	}
	auth.SetSecret(cfg.APISecret)
	return nil
}

// Initialize connects every collaborator named by cfg and builds the router.
// Redis, S3 and SendGrid are optional: the server runs without them.
func (server *Server) Initialize(cfg *config.Config) {
	server.Config = cfg
	log := logging.L()

	if err := installSecret(cfg); err != nil {
		log.Fatal().Err(err).Msg("refusing to start")
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.AppEnv,
		}); err != nil {
			log.Warn().Err(err).Msg("sentry not initialized")
		}
	}

	db, err := gorm.Open(postgres.Open(cfg.DB.DSN(cfg.Production())), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to postgres")
	}
	server.DB = db

	if err := models.Migrate(server.DB); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}
	if err := ensureFollowshipConstraints(server.DB); err != nil {
		log.Warn().Err(err).Msg("followship constraints not ensured")
	}

	if err := cache.InitFromConfig(cfg.Redis); err != nil {
		log.Warn().Err(err).Msg("could not connect to redis, ranking cache disabled")
	}

	uploader, err := storage.NewS3Uploader(context.Background(), storage.S3Config{
		Bucket:          cfg.S3.Bucket,
		Region:          cfg.S3.Region,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
	})
	if err != nil {
		log.Warn().Err(err).Msg("image uploads disabled")
	} else {
		server.Uploader = uploader
	}

	sender, err := mailer.NewSendGrid(mailer.Config{
		APIKey:   cfg.Mail.SendGridKey,
		From:     cfg.Mail.From,
		FromName: cfg.Mail.FromName,
		AppURL:   cfg.AppURL,
	})
	if err != nil {
		log.Warn().Err(err).Msg("password reset emails disabled")
	} else {
		server.Mailer = sender
	}

	if err := seedAdmin(server.DB, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Error().Err(err).Msg("error seeding admin user")
	}

	if _, err := server.startJobs(); err != nil {
		log.Error().Err(err).Msg("background jobs not scheduled")
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	server.Router = gin.New()
	server.Router.Use(gin.Recovery())
	server.Router.Use(logging.GinMiddleware())
	server.Router.Use(middlewares.PrometheusMiddleware())
	server.Router.Use(middlewares.CORSMiddleware(cfg.AppURL))
	server.Router.Use(middlewares.RateLimitMiddleware())
	server.initializeRoutes()
}

func (server *Server) Run(addr string) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	defer sentry.Flush(2 * time.Second)

	logging.L().Info().Str("addr", addr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.L().Fatal().Err(err).Msg("server stopped")
	}
}

// ensureFollowshipConstraints adds the postgres check that backs the
// no-self-follow rule.
func ensureFollowshipConstraints(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	var count int64
	if err := db.Raw(
		"SELECT COUNT(1) FROM pg_constraint WHERE conname = ?",
		"followships_no_self_follow",
	).Scan(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Exec(
			"ALTER TABLE followships ADD CONSTRAINT followships_no_self_follow CHECK (follower_id <> following_id)",
		).Error; err != nil {
			return fmt.Errorf("add followships_no_self_follow: %w", err)
		}
	}
	return nil
}

// dbFor scopes the connection to the request so cancelled requests stop
// their queries.
func (server *Server) dbFor(c *gin.Context) *gorm.DB {
	return server.DB.WithContext(c.Request.Context())
}

// listing returns the configured sizes, falling back to the defaults when
// the server was built without a config.
func (server *Server) listing() config.Listing {
	if server.Config == nil {
		return config.DefaultListing()
	}
	return server.Config.Listing
}
