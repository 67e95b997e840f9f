package controllers

import (
	"time"

	"Forkful/api/logging"
	"Forkful/api/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// startJobs schedules the maintenance jobs and starts the scheduler.
func (server *Server) startJobs() (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		purgeExpiredResets(server.DB, time.Now())
	}); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

func purgeExpiredResets(db *gorm.DB, now time.Time) int64 {
	n, err := models.DeleteExpiredResets(db, now)
	if err != nil {
		logging.L().Error().Err(err).Msg("purging expired reset tokens failed")
		return 0
	}
	if n > 0 {
		logging.L().Info().Int64("deleted", n).Msg("purged expired reset tokens")
	}
	return n
}
