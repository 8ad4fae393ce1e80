package services

import (
	"math/rand"
	"time"

	"saarthi/internal/models"

	"gorm.io/gorm"
)

// ThoughtService owns the daily featured-thought rotation. Rotation is lazy:
// nothing runs in the background, a read that finds yesterday's thought still
// flagged elects a new one.
type ThoughtService struct {
	db *gorm.DB
}

func NewThoughtService(db *gorm.DB) *ThoughtService {
	return &ThoughtService{db: db}
}

// Current returns today's featured thought, rotating first when the flagged
// row went stale. Returns gorm.ErrRecordNotFound when no active thoughts
// exist at all.
//
// The rotate-and-persist sequence runs in one transaction that starts by
// clearing every featured flag, so two requests racing the staleness check
// serialize on that row write and the at-most-one-featured invariant holds;
// which thought wins is last-write-wins.
func (s *ThoughtService) Current(now time.Time) (*models.ThoughtOfTheDay, error) {
	var current models.ThoughtOfTheDay
	err := s.db.Where("is_featured = ? AND is_active = ?", true, true).First(&current).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if err == nil {
		stamp := current.UpdatedAt
		if stamp.IsZero() {
			stamp = current.CreatedAt
		}
		if !dateBefore(stamp, now) {
			return &current, nil
		}
		return s.rotate(&current)
	}

	// Nothing featured yet: elect among all active rows.
	return s.elect(nil)
}

func (s *ThoughtService) rotate(stale *models.ThoughtOfTheDay) (*models.ThoughtOfTheDay, error) {
	return s.elect(stale)
}

// elect picks a uniformly random active thought, excluding the stale one when
// given, and makes it the sole featured row. When the stale thought is the
// only active row it stays featured with a refreshed timestamp.
func (s *ThoughtService) elect(stale *models.ThoughtOfTheDay) (*models.ThoughtOfTheDay, error) {
	var chosen models.ThoughtOfTheDay
	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("is_active = ?", true)
		if stale != nil {
			query = query.Where("id <> ?", stale.ID)
		}
		var candidates []models.ThoughtOfTheDay
		if err := query.Find(&candidates).Error; err != nil {
			return err
		}

		if len(candidates) == 0 {
			if stale == nil {
				return gorm.ErrRecordNotFound
			}
			// Stale thought is the only active one; refresh it in place.
			chosen = *stale
		} else {
			chosen = candidates[rand.Intn(len(candidates))]
		}

		if err := tx.Model(&models.ThoughtOfTheDay{}).
			Where("is_featured = ?", true).
			Update("is_featured", false).Error; err != nil {
			return err
		}
		return tx.Model(&chosen).Update("is_featured", true).Error
	})
	if err != nil {
		return nil, err
	}
	chosen.IsFeatured = true
	return &chosen, nil
}

// Feature force-flags one thought as featured, clearing all others.
func (s *ThoughtService) Feature(id string) (*models.ThoughtOfTheDay, error) {
	var thought models.ThoughtOfTheDay
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&thought, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ThoughtOfTheDay{}).
			Where("is_featured = ?", true).
			Update("is_featured", false).Error; err != nil {
			return err
		}
		return tx.Model(&thought).Update("is_featured", true).Error
	})
	if err != nil {
		return nil, err
	}
	thought.IsFeatured = true
	return &thought, nil
}

// dateBefore reports whether a's calendar date (server-local) is strictly
// before b's. A 23-hour-old thought from today is not stale.
func dateBefore(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
