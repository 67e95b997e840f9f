package models

import (
	"errors"
	"html"
	"strings"
	"time"

	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found.")

type Category struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;unique" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (c *Category) Prepare() {
	c.Name = html.EscapeString(strings.TrimSpace(c.Name))
}

func (c *Category) Validate() map[string]string {
	errorMessages := make(map[string]string)
	if c.Name == "" {
		errorMessages["Required_name"] = "Category name is required"
	}
	return errorMessages
}

func (c *Category) SaveCategory(db *gorm.DB) (*Category, error) {
	if err := db.Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func FindAllCategories(db *gorm.DB) ([]Category, error) {
	var categories []Category
	if err := db.Order("id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func FindCategoryByID(db *gorm.DB, id uint) (*Category, error) {
	var category Category
	err := db.Where("id = ?", id).Take(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}
