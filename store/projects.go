package store

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/masjid-annour/mosquee-backend/models"
	"github.com/masjid-annour/mosquee-backend/utils"
)

func projectPreloads(q *gorm.DB) *gorm.DB {
	return q.Preload("Name").Preload("Description").Preload("CreatedBy")
}

func (s *Store) ListProjects(p utils.PageParams) ([]models.Project, int64, error) {
	q := s.db.Model(&models.Project{}).
		Joins("JOIN multi_language_texts AS name ON name.id = projects.name_id").
		Joins("JOIN multi_language_texts AS description ON description.id = projects.description_id")
	if p.Search != "" {
		like := "%" + strings.ToLower(p.Search) + "%"
		q = q.Where(activitySearchClause, like, like, like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Project
	err := projectPreloads(q.Select("projects.*")).
		Order("projects.created_at DESC").
		Offset(p.Offset()).Limit(p.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Store) GetProject(id uuid.UUID) (*models.Project, error) {
	var item models.Project
	if err := projectPreloads(s.db).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateProject(in models.ProjectInput) (*models.Project, error) {
	creator, err := uuid.Parse(in.CreatedByID)
	if err != nil {
		return nil, ErrMissingUserRef
	}

	var item models.Project
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
		description := in.Description.Model()
		if err := tx.Create(&description).Error; err != nil {
			return err
		}

		item = models.Project{
			Slug:          uniqueSlug(tx, "projects", in.Name.En),
			NameID:        name.ID,
			DescriptionID: description.ID,
			Budget:        in.Budget,
			Image:         strings.TrimSpace(in.Image),
			CreatedByID:   creator,
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetProject(item.ID)
}

func (s *Store) UpdateProject(id uuid.UUID, in models.ProjectInput) (*models.Project, error) {
	creator, err := uuid.Parse(in.CreatedByID)
	if err != nil {
		return nil, ErrMissingUserRef
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var item models.Project
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
		if err := updateText(tx, item.DescriptionID, in.Description); err != nil {
			return err
		}
		return tx.Model(&item).Updates(map[string]any{
			"budget":        in.Budget,
			"image":         strings.TrimSpace(in.Image),
			"created_by_id": creator,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetProject(id)
}

func (s *Store) DeleteProject(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var item models.Project
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Project{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MultiLanguageText{},
			"id IN ?", []uuid.UUID{item.NameID, item.DescriptionID}).Error
	})
}
