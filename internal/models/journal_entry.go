package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JournalEntry struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Mood      string    `json:"mood"` // free text
	AuthorID  string    `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *JournalEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
