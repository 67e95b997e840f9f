package models

import (
	"errors"
	"strings"
	"time"

	"Forkful/api/security"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found.")

type Comment struct {
	ID           uint       `gorm:"primary_key;autoIncrement" json:"id"`
	Text         string     `gorm:"type:text;not null" json:"text"`
	UserID       uint       `gorm:"not null;index" json:"UserId"`
	RestaurantID uint       `gorm:"not null;index" json:"RestaurantId"`
	User         User       `json:"User"`
	Restaurant   Restaurant `json:"Restaurant"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (c *Comment) Prepare() {
	c.ID = 0
	c.Text = security.StripTags(strings.TrimSpace(c.Text))
	c.User = User{}
	c.Restaurant = Restaurant{}
}

func (c *Comment) Validate() map[string]string {
	var errorMessages = make(map[string]string)

	if c.Text == "" {
		errorMessages["Required_text"] = "Text is required"
	}
	if c.UserID == 0 {
		errorMessages["Required_user"] = "User is required"
	}
	if c.RestaurantID == 0 {
		errorMessages["Required_restaurant"] = "Restaurant is required"
	}
	return errorMessages
}

func (c *Comment) SaveComment(db *gorm.DB) (*Comment, error) {
	if err := db.Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func FindCommentByID(db *gorm.DB, id uint) (*Comment, error) {
	var comment Comment
	err := db.Where("id = ?", id).Take(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (c *Comment) DeleteAComment(db *gorm.DB) (int64, error) {
	result := db.Where("id = ?", c.ID).Delete(&Comment{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// FindLatestComments returns the newest comments with author and restaurant.
func FindLatestComments(db *gorm.DB, limit int) ([]Comment, error) {
	var comments []Comment
	err := db.Preload("User").
		Preload("Restaurant").
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// FindUserComments returns every comment a user wrote, oldest first, with
// the restaurant each one targets.
func FindUserComments(db *gorm.DB, uid uint) ([]Comment, error) {
	var comments []Comment
	err := db.Preload("Restaurant").
		Where("user_id = ?", uid).
		Order("created_at asc, id asc").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func CountRestaurantComments(db *gorm.DB, rid uint) (int64, error) {
	var count int64
	err := db.Model(&Comment{}).Where("restaurant_id = ?", rid).Count(&count).Error
	return count, err
}
