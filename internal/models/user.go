package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleManager || r == RoleEmployee
}

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Username     string    `gorm:"type:varchar(255);not null" json:"username"`
	UsernameKey  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"-"`
	Email        string    `gorm:"type:varchar(255)" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255)" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null" json:"role"`
	Avatar       string    `gorm:"type:varchar(512)" json:"avatar,omitempty"`
	Level        int       `gorm:"not null;default:1" json:"level"`
	XP           int       `gorm:"not null;default:0" json:"xp"`
	Position     int64     `gorm:"not null;index" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	PrivateNotes []Note `gorm:"foreignKey:UserID" json:"private_notes,omitempty"`
}

// BeforeSave keeps the lower-cased lookup key in step with Username.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Username != "" {
		u.UsernameKey = strings.ToLower(u.Username)
	}
	return nil
}

// IsEmployee reports whether the user takes part in XP accounting.
func (u User) IsEmployee() bool {
	return u.Role == RoleEmployee
}

// Note is a manager-authored coaching note attached to a user.
type Note struct {
	ID           string  `gorm:"primaryKey;size:36" json:"id"`
	UserID       string  `gorm:"size:36;index;not null" json:"user_id"`
	Text         string  `gorm:"type:text;not null" json:"text"`
	Author       string  `gorm:"type:varchar(255);not null" json:"author"`
	Date         string  `gorm:"type:varchar(10);not null" json:"date"`
	LastEditedBy *string `gorm:"type:varchar(255)" json:"last_edited_by,omitempty"`
	Position     int64   `gorm:"not null;index" json:"-"`
}
