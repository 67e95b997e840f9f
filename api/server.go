package api

import (
	"context"

	"Forkful/api/config"
	"Forkful/api/controllers"
	"Forkful/api/logging"
	"Forkful/api/seed"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var server = controllers.Server{}

func Run(_ context.Context, cfg *config.Config) error {
	logging.Init(cfg.Log.Level, cfg.Log.Pretty)

	server.Initialize(cfg)
	server.Run(":" + cfg.Port)
	return nil
}

// Seed resets the database named by cfg to the development data set.
func Seed(_ context.Context, cfg *config.Config) error {
	logging.Init(cfg.Log.Level, cfg.Log.Pretty)

	db, err := gorm.Open(postgres.Open(cfg.DB.DSN(cfg.Production())), &gorm.Config{})
	if err != nil {
		return err
	}
	return seed.Load(db)
}
