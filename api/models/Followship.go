package models

import (
	"errors"
	"time"

	"Forkful/api/aggregation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Followship is the directed edge follower -> following.
type Followship struct {
	ID          uint      `gorm:"primary_key;autoIncrement" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_followship_pair" json:"followerId"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_followship_pair;index" json:"followingId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Follow creates the edge unless it exists. It fails with
// aggregation.ErrSelfFollow for a self-follow and ErrUserNotFound when the
// followed user does not exist.
func Follow(db *gorm.DB, followerID, followingID uint) (bool, error) {
	if err := aggregation.ValidateFollow(followerID, followingID); err != nil {
		return false, err
	}

	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&User{}, followingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&Followship{FollowerID: followerID, FollowingID: followingID})
		if result.Error != nil {
			return result.Error
		}
		created = result.RowsAffected > 0
		return nil
	})
	return created, err
}

func Unfollow(db *gorm.DB, followerID, followingID uint) (bool, error) {
	result := db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&Followship{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindFollowings returns the users uid follows.
func FindFollowings(db *gorm.DB, uid uint) ([]User, error) {
	var users []User
	err := db.Joins("JOIN followships ON followships.following_id = users.id").
		Where("followships.follower_id = ?", uid).
		Order("followships.created_at desc, users.id asc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// FindFollowers returns the users following uid.
func FindFollowers(db *gorm.DB, uid uint) ([]User, error) {
	var users []User
	err := db.Joins("JOIN followships ON followships.follower_id = users.id").
		Where("followships.following_id = ?", uid).
		Order("followships.created_at desc, users.id asc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
