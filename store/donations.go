package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/masjid-annour/mosquee-backend/models"
	"github.com/masjid-annour/mosquee-backend/utils"
)

// ErrMissingProjectRef is returned when a donation references an unknown
// project.
var ErrMissingProjectRef = errors.New("referenced project does not exist")

// CreateDonation records a gift from an authenticated user, optionally tied
// to an existing project.
func (s *Store) CreateDonation(donor uuid.UUID, in models.DonationInput) (*models.Donation, error) {
	donation := models.Donation{Amount: in.Amount, DonatedByID: donor}

	if in.ProjectID != "" {
		projectID, err := uuid.Parse(in.ProjectID)
		if err != nil {
			return nil, ErrMissingProjectRef
		}
		var n int64
		if err := s.db.Model(&models.Project{}).Where("id = ?", projectID).Count(&n).Error; err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, ErrMissingProjectRef
		}
		donation.ProjectID = &projectID
	}

	if err := s.db.Create(&donation).Error; err != nil {
		return nil, err
	}

	err := s.db.Preload("DonatedBy").Preload("Project").
		Preload("Project.Name").Preload("Project.Description").Preload("Project.CreatedBy").
		First(&donation, "id = ?", donation.ID).Error
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

// ListDonations pages through donations, newest first.
func (s *Store) ListDonations(p utils.PageParams) ([]models.Donation, int64, error) {
	q := s.db.Model(&models.Donation{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Donation
	err := q.Preload("DonatedBy").
		Preload("Project", func(db *gorm.DB) *gorm.DB { return db.Preload("Name").Preload("Description").Preload("CreatedBy") }).
		Order("donated_at DESC").
		Offset(p.Offset()).Limit(p.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ProjectDonationTotal sums gifts earmarked for one project, for the public
// donation progress bar.
func (s *Store) ProjectDonationTotal(projectID uuid.UUID) (int64, error) {
	var total int64
	err := s.db.Model(&models.Donation{}).Where("project_id = ?", projectID).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}
