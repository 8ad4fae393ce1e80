package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Scripture struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Slug         string    `gorm:"uniqueIndex;not null" json:"slug"`
	Icon         string    `gorm:"not null" json:"icon"`
	Color        string    `gorm:"not null" json:"color"`
	Introduction string    `gorm:"type:text;not null" json:"introduction"`
	KeyTeachings string    `gorm:"type:text;not null" json:"-"` // JSON array
	FamousVerses string    `gorm:"type:text;not null" json:"-"` // JSON array
	IsActive     bool      `gorm:"default:true;not null" json:"is_active"`
	OrderIndex   int       `gorm:"default:0;not null" json:"order_index"`
	CreatedBy    *string   `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s *Scripture) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Teachings decodes the serialized key_teachings list. A malformed value
// decodes to an empty slice rather than failing the response.
func (s *Scripture) Teachings() []string {
	return decodeStringList(s.KeyTeachings)
}

func (s *Scripture) Verses() []string {
	return decodeStringList(s.FamousVerses)
}

func (s *Scripture) SetTeachings(list []string) {
	s.KeyTeachings = encodeStringList(list)
}

func (s *Scripture) SetVerses(list []string) {
	s.FamousVerses = encodeStringList(list)
}

func decodeStringList(raw string) []string {
	var out []string
	if raw == "" {
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []string{}
	}
	return out
}

func encodeStringList(list []string) string {
	if list == nil {
		list = []string{}
	}
	b, _ := json.Marshal(list)
	return string(b)
}
