package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the owner of all budget data.
type User struct {
	DefaultModel
	Username     string `json:"username" gorm:"uniqueIndex:idx_user_username" example:"jdoe"`
	FirstName    string `json:"firstName" example:"Jane"`
	LastName     string `json:"lastName" example:"Doe"`
	Email        string `json:"email" gorm:"uniqueIndex:idx_user_email" example:"jane@example.com"`
	PasswordHash string `json:"-"`

	// TargetsRevision is incremented on every bulk update of the category targets
	TargetsRevision uint64 `json:"targetsRevision" example:"3"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.Email = NormalizeEmail(u.Email)

	if u.Username == "" {
		return ErrUsernameEmpty
	}

	return nil
}

// NormalizeEmail returns the form of an email address that is stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser stores a new user. The password must already be hashed.
func CreateUser(db *gorm.DB, user User) (User, error) {
	user.TargetsRevision = 0
	err := db.Create(&user).Error
	if err != nil {
		return User{}, err
	}

	return user, nil
}

// UserByEmail returns the user with the email address.
func UserByEmail(db *gorm.DB, email string) (User, error) {
	var user User
	err := db.Where("email = ?", NormalizeEmail(email)).First(&user).Error
	return user, err
}

// UserByID returns the user with the ID.
func UserByID(db *gorm.DB, id uuid.UUID) (User, error) {
	var user User
	err := db.Where("id = ?", id).First(&user).Error
	return user, err
}
