package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type News struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Slug          string            `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	TitleID       uuid.UUID         `gorm:"type:uuid;not null" json:"-"`
	Title         MultiLanguageText `gorm:"foreignKey:TitleID" json:"title"`
	DescriptionID uuid.UUID         `gorm:"type:uuid;not null" json:"-"`
	Description   MultiLanguageText `gorm:"foreignKey:DescriptionID" json:"description"`
	Image         string            `gorm:"type:text" json:"image"`
	PublishedByID uuid.UUID         `gorm:"type:uuid;not null" json:"-"`
	PublishedBy   User              `gorm:"foreignKey:PublishedByID" json:"publishedBy"`
	PublishedAt   time.Time         `gorm:"autoCreateTime" json:"publishedAt"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

type NewsInput struct {
	Title         MultiLanguageInput `json:"title"`
	Description   MultiLanguageInput `json:"description"`
	Image         string             `json:"image"`
	PublishedByID string             `json:"publishedById"`
}

func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
