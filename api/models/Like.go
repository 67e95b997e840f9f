package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Like is the edge "user likes restaurant". A pair exists at most once.
type Like struct {
	ID           uint       `gorm:"primary_key;autoIncrement" json:"id"`
	UserID       uint       `gorm:"not null;uniqueIndex:idx_like_user_restaurant" json:"UserId"`
	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_like_user_restaurant;index" json:"RestaurantId"`
	User         User       `json:"-"`
	Restaurant   Restaurant `json:"-"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// AddLike records the like and reports whether a new row was written.
func AddLike(db *gorm.DB, uid, rid uint) (bool, error) {
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&Restaurant{}, rid).Error; err != nil {
			return err
		}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&Like{UserID: uid, RestaurantID: rid})
		if result.Error != nil {
			return result.Error
		}
		created = result.RowsAffected > 0
		return nil
	})
	return created, err
}

// RemoveLike deletes the like if present. Removing a missing like is not an
// error; the bool reports whether a row was deleted.
func RemoveLike(db *gorm.DB, uid, rid uint) (bool, error) {
	result := db.Where("user_id = ? AND restaurant_id = ?", uid, rid).Delete(&Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
