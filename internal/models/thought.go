package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ThoughtOfTheDay holds the rotating daily quote. At most one active row has
// IsFeatured set; the invariant is maintained by the rotation service inside
// a transaction, not by a database constraint.
type ThoughtOfTheDay struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Author     string     `json:"author"`
	Language   string     `gorm:"default:'english';not null" json:"language"`
	Category   string     `json:"category"` // e.g. "wisdom", "meditation"
	TargetDate *time.Time `gorm:"type:date" json:"target_date"`
	IsActive   bool       `gorm:"default:true;not null" json:"is_active"`
	IsFeatured bool       `gorm:"default:false;not null" json:"is_featured"`
	CreatedBy  *string    `json:"created_by"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (t *ThoughtOfTheDay) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (ThoughtOfTheDay) TableName() string {
	return "thoughts_of_the_day"
}
