package models

import (
	"errors"
	"html"
	"strings"
	"time"

	"Forkful/api/security"

	"gorm.io/gorm"
)

var ErrRestaurantNotFound = errors.New("restaurant not found.")

type Restaurant struct {
	ID           uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Tel          string    `gorm:"size:64" json:"tel"`
	Address      string    `gorm:"size:255" json:"address"`
	OpeningHours string    `gorm:"size:64" json:"openingHours"`
	Description  string    `gorm:"type:text" json:"description"`
	Image        string    `gorm:"size:255" json:"image"`
	ViewCounts   int64     `gorm:"not null;default:0" json:"viewCounts"`
	CategoryID   uint      `gorm:"index" json:"CategoryId"`
	Category     Category  `json:"Category"`
	Comments     []Comment `json:"Comments,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Restaurant) Prepare() {
	r.Name = html.EscapeString(strings.TrimSpace(r.Name))
	r.Description = security.StripTags(strings.TrimSpace(r.Description))
}

func (r *Restaurant) Validate() map[string]string {
	errorMessages := make(map[string]string)
	if r.Name == "" {
		errorMessages["Required_name"] = "Restaurant name is required"
	}
	return errorMessages
}

func (r *Restaurant) SaveRestaurant(db *gorm.DB) (*Restaurant, error) {
	if err := db.Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

func restaurantsInCategory(db *gorm.DB, categoryID uint) *gorm.DB {
	query := db.Model(&Restaurant{})
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	return query
}

// CountRestaurants counts restaurants, optionally within one category.
func CountRestaurants(db *gorm.DB, categoryID uint) (int64, error) {
	var total int64
	err := restaurantsInCategory(db, categoryID).Count(&total).Error
	return total, err
}

// FindRestaurants returns one page of restaurants with their category,
// optionally restricted to one category.
func FindRestaurants(db *gorm.DB, categoryID uint, offset, limit int) ([]Restaurant, error) {
	var restaurants []Restaurant
	err := restaurantsInCategory(db, categoryID).
		Preload("Category").
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&restaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func FindAllRestaurants(db *gorm.DB) ([]Restaurant, error) {
	var restaurants []Restaurant
	if err := db.Preload("Category").Order("id asc").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func FindLatestRestaurants(db *gorm.DB, limit int) ([]Restaurant, error) {
	var restaurants []Restaurant
	err := db.Preload("Category").
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&restaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func FindRestaurantByID(db *gorm.DB, id uint) (*Restaurant, error) {
	var restaurant Restaurant
	err := db.Preload("Category").Where("id = ?", id).Take(&restaurant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// FindRestaurantWithComments loads a restaurant, its category and its
// comments (newest first) with their authors.
func FindRestaurantWithComments(db *gorm.DB, id uint) (*Restaurant, error) {
	var restaurant Restaurant
	err := db.Preload("Category").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at desc, id desc")
		}).
		Preload("Comments.User").
		Where("id = ?", id).
		Take(&restaurant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// IncrementViewCount bumps the view counter in the database and returns the
// stored value after the increment.
func IncrementViewCount(db *gorm.DB, id uint) (int64, error) {
	var count int64
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Restaurant{}).
			Where("id = ?", id).
			UpdateColumn("view_counts", gorm.Expr("view_counts + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRestaurantNotFound
		}
		return tx.Model(&Restaurant{}).Select("view_counts").Where("id = ?", id).Scan(&count).Error
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
