package store

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/masjid-annour/mosquee-backend/models"
	"github.com/masjid-annour/mosquee-backend/utils"
)

const activitySearchClause = "LOWER(name.ar) LIKE ? OR LOWER(name.en) LIKE ? OR LOWER(name.fr) LIKE ?" +
	" OR LOWER(description.ar) LIKE ? OR LOWER(description.en) LIKE ? OR LOWER(description.fr) LIKE ?"

func activityPreloads(q *gorm.DB) *gorm.DB {
	return q.Preload("Name").Preload("Period").Preload("Description").Preload("CreatedBy")
}

func (s *Store) ListActivities(p utils.PageParams) ([]models.Activity, int64, error) {
	q := s.db.Model(&models.Activity{}).
		Joins("JOIN multi_language_texts AS name ON name.id = activities.name_id").
		Joins("JOIN multi_language_texts AS description ON description.id = activities.description_id")
	if p.Search != "" {
		like := "%" + strings.ToLower(p.Search) + "%"
		q = q.Where(activitySearchClause, like, like, like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Activity
	err := activityPreloads(q.Select("activities.*")).
		Order("activities.created_at DESC").
		Offset(p.Offset()).Limit(p.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Store) GetActivity(id uuid.UUID) (*models.Activity, error) {
	var item models.Activity
	if err := activityPreloads(s.db).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateActivity writes the activity and its three text rows atomically.
func (s *Store) CreateActivity(in models.ActivityInput) (*models.Activity, error) {
	creator, err := uuid.Parse(in.CreatedByID)
	if err != nil {
		return nil, ErrMissingUserRef
	}

	var item models.Activity
	err = s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := userExists(tx, creator)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMissingUserRef
		}

		name := in.Name.Model()
		if err := tx.Create(&name).Error; err != nil {
			return err
		}
		period := in.Period.Model()
		if err := tx.Create(&period).Error; err != nil {
			return err
		}
		description := in.Description.Model()
		if err := tx.Create(&description).Error; err != nil {
			return err
		}

		item = models.Activity{
			NameID:        name.ID,
			PeriodID:      period.ID,
			DescriptionID: description.ID,
			Image:         strings.TrimSpace(in.Image),
			CreatedByID:   creator,
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetActivity(item.ID)
}

func (s *Store) UpdateActivity(id uuid.UUID, in models.ActivityInput) (*models.Activity, error) {
	creator, err := uuid.Parse(in.CreatedByID)
	if err != nil {
		return nil, ErrMissingUserRef
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var item models.Activity
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			return err
		}
		ok, err := userExists(tx, creator)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMissingUserRef
		}

		if err := updateText(tx, item.NameID, in.Name); err != nil {
			return err
		}
		if err := updateText(tx, item.PeriodID, in.Period); err != nil {
			return err
		}
		if err := updateText(tx, item.DescriptionID, in.Description); err != nil {
			return err
		}
		return tx.Model(&item).Updates(map[string]any{
			"image":         strings.TrimSpace(in.Image),
			"created_by_id": creator,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetActivity(id)
}

func (s *Store) DeleteActivity(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var item models.Activity
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Activity{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MultiLanguageText{},
			"id IN ?", []uuid.UUID{item.NameID, item.PeriodID, item.DescriptionID}).Error
	})
}
