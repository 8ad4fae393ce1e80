package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"uniqueIndex;not null" json:"username"`
	Name      string     `gorm:"not null" json:"name"`
	Password  string     `gorm:"not null" json:"-"` // bcrypt hash
	IsAdmin   bool       `gorm:"default:false;not null" json:"is_admin"`
	IsActive  bool       `gorm:"default:true;not null" json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Admin is the legacy standalone admin account table. It predates the
// User.IsAdmin flag and issues its own token shape; the two tracks are
// intentionally kept separate.
type Admin struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"uniqueIndex;not null" json:"username"`
	Password  string     `gorm:"not null" json:"-"`
	IsActive  bool       `gorm:"default:true;not null" json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
