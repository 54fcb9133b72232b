package store

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/masjid-annour/mosquee-backend/models"
	"github.com/masjid-annour/mosquee-backend/utils"
)

const sermonSearchClause = "LOWER(topic.ar) LIKE ? OR LOWER(topic.en) LIKE ? OR LOWER(topic.fr) LIKE ?" +
	" OR LOWER(description.ar) LIKE ? OR LOWER(description.en) LIKE ? OR LOWER(description.fr) LIKE ?"

func (s *Store) sermonQuery() *gorm.DB {
	return s.db.Model(&models.Sermon{}).
		Joins("JOIN multi_language_texts AS topic ON topic.id = sermons.topic_id").
		Joins("JOIN multi_language_texts AS description ON description.id = sermons.description_id")
}

func sermonPreloads(q *gorm.DB) *gorm.DB {
	return q.Preload("Topic").Preload("Description").
		Preload("PreachedBy").Preload("PublishedBy").Preload("UpdatedBy")
}

// ListSermons pages through sermons; the search term matches substrings in
// any of the six topic/description language columns.
func (s *Store) ListSermons(p utils.PageParams) ([]models.Sermon, int64, error) {
	q := s.sermonQuery()
	if p.Search != "" {
		like := "%" + strings.ToLower(p.Search) + "%"
		q = q.Where(sermonSearchClause, like, like, like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Sermon
	err := sermonPreloads(q.Select("sermons.*")).
		Order("sermons.published_at DESC").
		Offset(p.Offset()).Limit(p.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Store) GetSermon(id uuid.UUID) (*models.Sermon, error) {
	var sermon models.Sermon
	err := sermonPreloads(s.db).First(&sermon, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sermon, nil
}

// CreateSermon writes the sermon row and its two text rows in one
// transaction; a failure on any of the three leaves nothing behind.
func (s *Store) CreateSermon(in models.SermonInput) (*models.Sermon, error) {
	preacher, err := uuid.Parse(in.PreachedByID)
	if err != nil {
		return nil, ErrMissingUserRef
	}
	publisher, err := uuid.Parse(in.PublishedByID)
	if err != nil {
		return nil, ErrMissingUserRef
	}

	var sermon models.Sermon
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, id := range []uuid.UUID{preacher, publisher} {
			ok, err := userExists(tx, id)
			if err != nil {
				return err
			}
			if !ok {
				return ErrMissingUserRef
			}
		}

		topic := in.Topic.Model()
		if err := tx.Create(&topic).Error; err != nil {
			return err
		}
		description := in.Description.Model()
		if err := tx.Create(&description).Error; err != nil {
			return err
		}

		sermon = models.Sermon{
			TopicID:       topic.ID,
			DescriptionID: description.ID,
			Video:         strings.TrimSpace(in.Video),
			PreachedByID:  preacher,
			PublishedByID: publisher,
			UpdatedByID:   publisher,
		}
		return tx.Create(&sermon).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetSermon(sermon.ID)
}

// UpdateSermon rewrites the sermon and both owned text rows atomically.
func (s *Store) UpdateSermon(id uuid.UUID, in models.SermonInput) (*models.Sermon, error) {
	preacher, err := uuid.Parse(in.PreachedByID)
	if err != nil {
		return nil, ErrMissingUserRef
	}
	publisher, err := uuid.Parse(in.PublishedByID)
	if err != nil {
		return nil, ErrMissingUserRef
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var sermon models.Sermon
		if err := tx.First(&sermon, "id = ?", id).Error; err != nil {
			return err
		}
		for _, ref := range []uuid.UUID{preacher, publisher} {
			ok, err := userExists(tx, ref)
			if err != nil {
				return err
			}
			if !ok {
				return ErrMissingUserRef
			}
		}

		topicUpdates := in.Topic.Model()
		err := tx.Model(&models.MultiLanguageText{}).Where("id = ?", sermon.TopicID).
			Updates(map[string]any{"ar": topicUpdates.Ar, "en": topicUpdates.En, "fr": topicUpdates.Fr}).Error
		if err != nil {
			return err
		}
		descUpdates := in.Description.Model()
		err = tx.Model(&models.MultiLanguageText{}).Where("id = ?", sermon.DescriptionID).
			Updates(map[string]any{"ar": descUpdates.Ar, "en": descUpdates.En, "fr": descUpdates.Fr}).Error
		if err != nil {
			return err
		}

		return tx.Model(&sermon).Updates(map[string]any{
			"video":           strings.TrimSpace(in.Video),
			"preached_by_id":  preacher,
			"published_by_id": publisher,
			"updated_by_id":   publisher,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetSermon(id)
}

// DeleteSermon removes the sermon row and its two text rows; either all three
// go or none do.
func (s *Store) DeleteSermon(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var sermon models.Sermon
		if err := tx.First(&sermon, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Sermon{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MultiLanguageText{},
			"id IN ?", []uuid.UUID{sermon.TopicID, sermon.DescriptionID}).Error
	})
}
