package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity is a recurring mosque activity (courses, weekly gatherings).
// Period is free-form trilingual text ("every Friday after Maghrib", ...).
type Activity struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	NameID        uuid.UUID         `gorm:"type:uuid;not null" json:"-"`
	Name          MultiLanguageText `gorm:"foreignKey:NameID" json:"name"`
	PeriodID      uuid.UUID         `gorm:"type:uuid;not null" json:"-"`
	Period        MultiLanguageText `gorm:"foreignKey:PeriodID" json:"period"`
	DescriptionID uuid.UUID         `gorm:"type:uuid;not null" json:"-"`
	Description   MultiLanguageText `gorm:"foreignKey:DescriptionID" json:"description"`
	Image         string            `gorm:"type:text" json:"image"`
	CreatedByID   uuid.UUID         `gorm:"type:uuid;not null" json:"-"`
	CreatedBy     User              `gorm:"foreignKey:CreatedByID" json:"createdBy"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

type ActivityInput struct {
	Name        MultiLanguageInput `json:"name"`
	Period      MultiLanguageInput `json:"period"`
	Description MultiLanguageInput `json:"description"`
	Image       string             `json:"image"`
	CreatedByID string             `json:"createdById"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
