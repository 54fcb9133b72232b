package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a fundraising project (construction, renovation, ...). Budget is
// in XOF francs, which have no minor unit.
type Project struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Slug          string            `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	NameID        uuid.UUID         `gorm:"type:uuid;not null" json:"-"`
	Name          MultiLanguageText `gorm:"foreignKey:NameID" json:"name"`
	DescriptionID uuid.UUID         `gorm:"type:uuid;not null" json:"-"`
	Description   MultiLanguageText `gorm:"foreignKey:DescriptionID" json:"description"`
	Budget        int64             `gorm:"not null" json:"budget"`
	Image         string            `gorm:"type:text" json:"image"`
	CreatedByID   uuid.UUID         `gorm:"type:uuid;not null" json:"-"`
	CreatedBy     User              `gorm:"foreignKey:CreatedByID" json:"createdBy"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

type ProjectInput struct {
	Name        MultiLanguageInput `json:"name"`
	Description MultiLanguageInput `json:"description"`
	Budget      int64              `json:"budget"`
	Image       string             `json:"image"`
	CreatedByID string             `json:"createdById"`
}

// Donation records a gift, optionally earmarked for a project.
type Donation struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Amount      int64      `gorm:"not null" json:"amount"`
	ProjectID   *uuid.UUID `gorm:"type:uuid" json:"-"`
	Project     *Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	DonatedByID uuid.UUID  `gorm:"type:uuid;not null" json:"-"`
	DonatedBy   User       `gorm:"foreignKey:DonatedByID" json:"donatedBy"`
	DonatedAt   time.Time  `gorm:"autoCreateTime" json:"donatedAt"`
}

type DonationInput struct {
	Amount    int64  `json:"amount"`
	ProjectID string `json:"projectId"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
