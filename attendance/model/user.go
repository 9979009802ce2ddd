package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
)

type User struct {
	ID           uint    `gorm:"primaryKey;column:id" json:"id"`
	Code         string  `gorm:"column:code;type:varchar(20);uniqueIndex;not null" json:"code"`
	FirstName    string  `gorm:"column:first_name;type:varchar(100);not null" json:"firstName"`
	LastName     string  `gorm:"column:last_name;type:varchar(100);not null" json:"lastName"`
	Email        *string `gorm:"column:email;type:varchar(255);index" json:"email,omitempty"`
	Role         string  `gorm:"column:role;type:varchar(20);not null" json:"role"`
	PasswordHash string  `gorm:"column:password_hash;type:varchar(100);not null" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

// ValidRole reports whether the role is one the app knows about.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return true
	default:
		return false
	}
}
