package store

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/masjid-annour/mosquee-backend/models"
	"github.com/masjid-annour/mosquee-backend/utils"
)

const newsSearchClause = "LOWER(title.ar) LIKE ? OR LOWER(title.en) LIKE ? OR LOWER(title.fr) LIKE ?" +
	" OR LOWER(description.ar) LIKE ? OR LOWER(description.en) LIKE ? OR LOWER(description.fr) LIKE ?"

func newsPreloads(q *gorm.DB) *gorm.DB {
	return q.Preload("Title").Preload("Description").Preload("PublishedBy")
}

func (s *Store) ListNews(p utils.PageParams) ([]models.News, int64, error) {
	q := s.db.Model(&models.News{}).
		Joins("JOIN multi_language_texts AS title ON title.id = news.title_id").
		Joins("JOIN multi_language_texts AS description ON description.id = news.description_id")
	if p.Search != "" {
		like := "%" + strings.ToLower(p.Search) + "%"
		q = q.Where(newsSearchClause, like, like, like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.News
	err := newsPreloads(q.Select("news.*")).
		Order("news.published_at DESC").
		Offset(p.Offset()).Limit(p.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Store) GetNews(id uuid.UUID) (*models.News, error) {
	var item models.News
	if err := newsPreloads(s.db).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) GetNewsBySlug(slugValue string) (*models.News, error) {
	var item models.News
	if err := newsPreloads(s.db).First(&item, "slug = ?", slugValue).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateNews(in models.NewsInput) (*models.News, error) {
	publisher, err := uuid.Parse(in.PublishedByID)
	if err != nil {
		return nil, ErrMissingUserRef
	}

	var item models.News
	err = s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := userExists(tx, publisher)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMissingUserRef
		}

		title := in.Title.Model()
		if err := tx.Create(&title).Error; err != nil {
			return err
		}
		description := in.Description.Model()
		if err := tx.Create(&description).Error; err != nil {
			return err
		}

		item = models.News{
			Slug:          uniqueSlug(tx, "news", in.Title.En),
			TitleID:       title.ID,
			DescriptionID: description.ID,
			Image:         strings.TrimSpace(in.Image),
			PublishedByID: publisher,
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetNews(item.ID)
}

func (s *Store) UpdateNews(id uuid.UUID, in models.NewsInput) (*models.News, error) {
	publisher, err := uuid.Parse(in.PublishedByID)
	if err != nil {
		return nil, ErrMissingUserRef
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var item models.News
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			return err
		}
		ok, err := userExists(tx, publisher)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMissingUserRef
		}

		if err := updateText(tx, item.TitleID, in.Title); err != nil {
			return err
		}
		if err := updateText(tx, item.DescriptionID, in.Description); err != nil {
			return err
		}
		return tx.Model(&item).Updates(map[string]any{
			"image":           strings.TrimSpace(in.Image),
			"published_by_id": publisher,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetNews(id)
}

func (s *Store) DeleteNews(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var item models.News
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.News{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MultiLanguageText{},
			"id IN ?", []uuid.UUID{item.TitleID, item.DescriptionID}).Error
	})
}

// updateText rewrites one owned trilingual row inside a transaction.
func updateText(tx *gorm.DB, id uuid.UUID, in models.MultiLanguageInput) error {
	return tx.Model(&models.MultiLanguageText{}).Where("id = ?", id).
		Updates(map[string]any{"ar": in.Ar, "en": in.En, "fr": in.Fr}).Error
}

// uniqueSlug derives a URL slug from the English title, suffixing a counter
// until it is free in the given table.
func uniqueSlug(tx *gorm.DB, table, title string) string {
	base := slug.Make(title)
	if base == "" {
		base = table
	}
	candidate := base
	for i := 2; ; i++ {
		var n int64
		if err := tx.Table(table).Where("slug = ?", candidate).Count(&n).Error; err != nil || n == 0 {
			return candidate
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
}
