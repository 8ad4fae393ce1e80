package services

import (
	"time"

	"saarthi/internal/models"

	"gorm.io/gorm"
)

// AnalyticsService computes the dashboard numbers. Everything is read-only
// and calculated fresh per request.
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

type EntityCounts struct {
	Users          int64 `json:"users"`
	Posts          int64 `json:"posts"`
	Comments       int64 `json:"comments"`
	ChatMessages   int64 `json:"chat_messages"`
	JournalEntries int64 `json:"journal_entries"`
	Emotions       int64 `json:"emotions"`
	Verses         int64 `json:"verses"`
	Interactions   int64 `json:"interactions"`
}

type EmotionUsage struct {
	EmotionID   string `json:"emotion_id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Count       int64  `json:"count"`
}

type DashboardStats struct {
	Totals      EntityCounts   `json:"totals"`
	WeeklyNew   EntityCounts   `json:"weekly_new"`
	TopEmotions []EmotionUsage `json:"top_emotions"`
	RecentUsers []models.User  `json:"recent_users"`
}

// Dashboard gathers totals, trailing-7-day deltas and the five most used
// emotions. Ties in the top list break on emotion id ascending so repeated
// calls return a stable order.
func (s *AnalyticsService) Dashboard(now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.Totals, err = s.counts(nil); err != nil {
		return nil, err
	}
	weekAgo := now.AddDate(0, 0, -7)
	if stats.WeeklyNew, err = s.counts(&weekAgo); err != nil {
		return nil, err
	}

	err = s.db.Model(&models.Interaction{}).
		Select("interactions.emotion_id, emotions.name, emotions.display_name, COUNT(*) as count").
		Joins("JOIN emotions ON emotions.id = interactions.emotion_id").
		Group("interactions.emotion_id, emotions.name, emotions.display_name").
		Order("count DESC, interactions.emotion_id ASC").
		Limit(5).
		Scan(&stats.TopEmotions).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Order("created_at DESC").Limit(5).Find(&stats.RecentUsers).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *AnalyticsService) counts(since *time.Time) (EntityCounts, error) {
	var c EntityCounts
	tables := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &c.Users},
		{&models.Post{}, &c.Posts},
		{&models.Comment{}, &c.Comments},
		{&models.ChatMessage{}, &c.ChatMessages},
		{&models.JournalEntry{}, &c.JournalEntries},
		{&models.Emotion{}, &c.Emotions},
		{&models.Verse{}, &c.Verses},
		{&models.Interaction{}, &c.Interactions},
	}
	for _, t := range tables {
		query := s.db.Model(t.model)
		if since != nil {
			query = query.Where("created_at >= ?", *since)
		}
		if err := query.Count(t.dest).Error; err != nil {
			return c, err
		}
	}
	return c, nil
}

type UserActivity struct {
	Posts          int64 `json:"posts"`
	Comments       int64 `json:"comments"`
	ChatMessages   int64 `json:"chat_messages"`
	JournalEntries int64 `json:"journal_entries"`
}

// UserActivity counts what one user has authored across content types.
func (s *AnalyticsService) UserActivity(userID string) (*UserActivity, error) {
	var a UserActivity
	if err := s.db.Model(&models.Post{}).Where("author_id = ?", userID).Count(&a.Posts).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Comment{}).Where("author_id = ?", userID).Count(&a.Comments).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.ChatMessage{}).Where("user_id = ?", userID).Count(&a.ChatMessages).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.JournalEntry{}).Where("author_id = ?", userID).Count(&a.JournalEntries).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
