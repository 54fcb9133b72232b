package store

import (
	"strings"

	"github.com/masjid-annour/mosquee-backend/models"
	"github.com/masjid-annour/mosquee-backend/utils"
)

// CreateSubscriber adds a newsletter signup. A duplicate email surfaces as
// gorm.ErrDuplicatedKey.
func (s *Store) CreateSubscriber(email string) (*models.Subscriber, error) {
	sub := models.Subscriber{Email: strings.ToLower(strings.TrimSpace(email))}
	if err := s.db.Create(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *Store) ListSubscribers(p utils.PageParams) ([]models.Subscriber, int64, error) {
	q := s.db.Model(&models.Subscriber{})
	if p.Search != "" {
		q = q.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(p.Search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Subscriber
	err := q.Order("created_at DESC").Offset(p.Offset()).Limit(p.PageSize).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
