package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  string    `gorm:"not null;index" json:"author_id"`
	Author    User      `json:"author"`
	ImageURL  string    `gorm:"type:text" json:"image_url"`
	VideoURL  string    `gorm:"type:text" json:"video_url"`
	Likes     int       `gorm:"default:0;not null" json:"likes"` // plain counter, no dedup
	CreatedAt time.Time `json:"created_at"`

	// Filled on read: comment count from a grouped query, content rendered
	// to sanitized HTML
	CommentCount int    `gorm:"-" json:"comments"`
	ContentHTML  string `gorm:"-" json:"content_html,omitempty"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type Comment struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	PostID    string    `gorm:"not null;index" json:"post_id"`
	AuthorID  string    `gorm:"not null;index" json:"author_id"`
	Author    User      `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
