package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrInvalidResetToken = errors.New("invalid link. try requesting again")

// ResetTokenTTL bounds how long a reset link stays usable.
const ResetTokenTTL = time.Hour

type ResetPassword struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Email     string    `gorm:"size:100;not null;index" json:"email"`
	Token     string    `gorm:"size:255;not null;unique" json:"token"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (r *ResetPassword) SaveDetails(db *gorm.DB) (*ResetPassword, error) {
	if err := db.Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// FindResetByToken returns the reset request for token if it has not expired.
func FindResetByToken(db *gorm.DB, token string, now time.Time) (*ResetPassword, error) {
	var reset ResetPassword
	err := db.Where("token = ?", token).Take(&reset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidResetToken
		}
		return nil, err
	}
	if now.Sub(reset.CreatedAt) > ResetTokenTTL {
		return nil, ErrInvalidResetToken
	}
	return &reset, nil
}

func (r *ResetPassword) DeleteDetails(db *gorm.DB) (int64, error) {
	result := db.Where("id = ?", r.ID).Delete(&ResetPassword{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteExpiredResets removes reset requests older than ResetTokenTTL.
func DeleteExpiredResets(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Where("created_at < ?", now.Add(-ResetTokenTTL)).Delete(&ResetPassword{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
