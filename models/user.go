package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name                string     `gorm:"not null" json:"name"`
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	Password            string     `gorm:"not null" json:"-"`
	Role                string     `gorm:"not null;default:admin" json:"role"` // admin is the only role today
	IsActive            bool       `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt         *time.Time `json:"last_login_at"`
	FailedLoginAttempts int        `gorm:"not null;default:0" json:"-"`
	LockoutUntil        *time.Time `json:"-"`
}

// BeforeCreate hook to generate UUID
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// IsLockedOut checks whether the account is currently locked after repeated failed logins
func (u *User) IsLockedOut() bool {
	return u.LockoutUntil != nil && time.Now().Before(*u.LockoutUntil)
}
