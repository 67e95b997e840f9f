package models

import (
	"errors"
	"html"
	"strings"
	"time"

	"Forkful/api/security"

	"github.com/badoux/checkmail"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("User not found")

type User struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:100;not null;unique" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Image     string    `gorm:"size:255" json:"image"`
	IsAdmin   bool      `gorm:"default:false" json:"isAdmin"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (u *User) HashPassword() error {
	hashedPassword, err := security.Hash(u.Password)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	return u.HashPassword()
}

func (u *User) Prepare() {
	u.Name = html.EscapeString(strings.TrimSpace(u.Name))
	u.Email = html.EscapeString(strings.ToLower(strings.TrimSpace(u.Email)))
	if u.ID == 0 {
		u.IsAdmin = false
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()
}

func (u *User) Validate(action string) map[string]string {
	var errorMessages = make(map[string]string)

	switch strings.ToLower(action) {
	case "update":
		if u.Name == "" {
			errorMessages["Required_name"] = "Please enter user name."
		}
	case "login":
		if u.Password == "" {
			errorMessages["Required_password"] = "Required Password"
		}
		if u.Email == "" {
			errorMessages["Required_email"] = "Required Email"
		}
		if u.Email != "" {
			if err := checkmail.ValidateFormat(u.Email); err != nil {
				errorMessages["Invalid_email"] = "Invalid Email"
			}
		}
	case "forgotpassword":
		if u.Email == "" {
			errorMessages["Required_email"] = "Required Email"
		}
		if u.Email != "" {
			if err := checkmail.ValidateFormat(u.Email); err != nil {
				errorMessages["Invalid_email"] = "Invalid Email"
			}
		}
	default:
		if u.Name == "" {
			errorMessages["Required_name"] = "Required Name"
		}
		if u.Password == "" {
			errorMessages["Required_password"] = "Required Password"
		}
		if u.Password != "" && len(u.Password) < 6 {
			errorMessages["Invalid_password"] = "Password should be at least 6 characters"
		}
		if u.Email == "" {
			errorMessages["Required_email"] = "Required Email"
		}
		if u.Email != "" {
			if err := checkmail.ValidateFormat(u.Email); err != nil {
				errorMessages["Invalid_email"] = "Invalid Email"
			}
		}
	}
	return errorMessages
}

func (u *User) SaveUser(db *gorm.DB) (*User, error) {
	err := db.Create(u).Error
	if err != nil {
		return nil, err
	}
	return u, nil
}

func EmailTaken(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&User{}).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).Count(&count).Error
	return count > 0, err
}

func FindAllUsers(db *gorm.DB) ([]User, error) {
	var users []User
	err := db.Order("id asc").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func FindUserByID(db *gorm.DB, uid uint) (*User, error) {
	var user User
	err := db.Where("id = ?", uid).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*User, error) {
	var user User
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile writes the editable profile fields. An empty image keeps the
// stored one.
func (u *User) UpdateProfile(db *gorm.DB, uid uint) (*User, error) {
	updates := map[string]interface{}{
		"name":       u.Name,
		"updated_at": time.Now(),
	}
	if u.Image != "" {
		updates["image"] = u.Image
	}

	err := db.Model(&User{}).Where("id = ?", uid).Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return FindUserByID(db, uid)
}

func UpdatePassword(db *gorm.DB, email, password string) error {
	hashed, err := security.Hash(password)
	if err != nil {
		return err
	}
	return db.Model(&User{}).Where("email = ?", email).Updates(map[string]interface{}{
		"password":   string(hashed),
		"updated_at": time.Now(),
	}).Error
}
