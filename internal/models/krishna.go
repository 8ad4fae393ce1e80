package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Emotion is a curated emotional category. Inactive emotions keep their rows
// but disappear from public listings.
type Emotion struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"` // internal name
	DisplayName string    `gorm:"not null" json:"display_name"`
	Description string    `json:"description"`
	Color       string    `gorm:"not null" json:"color"` // hex color code
	IsActive    bool      `gorm:"default:true;not null" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *Emotion) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

type Verse struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	EmotionID   string    `gorm:"not null;index" json:"emotion_id"`
	Emotion     Emotion   `json:"emotion"`
	Sanskrit    string    `gorm:"type:text;not null" json:"sanskrit"`
	Hindi       string    `gorm:"type:text;not null" json:"hindi"`
	English     string    `gorm:"type:text;not null" json:"english"`
	Explanation string    `gorm:"type:text;not null" json:"explanation"`
	Chapter     string    `json:"chapter"`
	VerseNumber string    `json:"verse_number"`
	IsActive    bool      `gorm:"default:true;not null" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func (v *Verse) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// Interaction is an append-only analytics event: someone (possibly anonymous)
// viewed a verse under an emotion.
type Interaction struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    *string   `gorm:"index" json:"user_id"` // nil for anonymous
	EmotionID string    `gorm:"not null;index" json:"emotion_id"`
	VerseID   string    `gorm:"not null;index" json:"verse_id"`
	SessionID string    `json:"session_id"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

func (i *Interaction) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
