package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatMessage rows come in pairs: the user's question followed by the AI
// answer, both owned by the same user. There is no explicit pair id.
type ChatMessage struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	UserID       string    `gorm:"not null;index" json:"user_id"`
	User         User      `json:"user"`
	IsAIResponse bool      `gorm:"default:false;not null" json:"is_ai_response"`
	CreatedAt    time.Time `json:"created_at"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
