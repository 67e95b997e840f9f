package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Favorite is the edge "user favorited restaurant". A pair exists at most once.
type Favorite struct {
	ID           uint       `gorm:"primary_key;autoIncrement" json:"id"`
	UserID       uint       `gorm:"not null;uniqueIndex:idx_favorite_user_restaurant" json:"UserId"`
	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_favorite_user_restaurant;index" json:"RestaurantId"`
	User         User       `json:"-"`
	Restaurant   Restaurant `json:"Restaurant"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func AddFavorite(db *gorm.DB, uid, rid uint) (bool, error) {
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&Restaurant{}, rid).Error; err != nil {
			return err
		}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&Favorite{UserID: uid, RestaurantID: rid})
		if result.Error != nil {
			return result.Error
		}
		created = result.RowsAffected > 0
		return nil
	})
	return created, err
}

func RemoveFavorite(db *gorm.DB, uid, rid uint) (bool, error) {
	result := db.Where("user_id = ? AND restaurant_id = ?", uid, rid).Delete(&Favorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindUserFavoriteRestaurants lists the restaurants a user favorited, most
// recent first.
func FindUserFavoriteRestaurants(db *gorm.DB, uid uint) ([]Restaurant, error) {
	var favorites []Favorite
	err := db.Preload("Restaurant").
		Where("user_id = ?", uid).
		Order("created_at desc, id desc").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	restaurants := make([]Restaurant, 0, len(favorites))
	for _, f := range favorites {
		restaurants = append(restaurants, f.Restaurant)
	}
	return restaurants, nil
}
