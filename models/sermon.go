package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sermon is a preached-video record. Topic and Description are owned
// MultiLanguageText rows; the store writes the three rows in one transaction.
type Sermon struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	TopicID       uuid.UUID         `gorm:"type:uuid;not null" json:"-"`
	Topic         MultiLanguageText `gorm:"foreignKey:TopicID" json:"topic"`
	DescriptionID uuid.UUID         `gorm:"type:uuid;not null" json:"-"`
	Description   MultiLanguageText `gorm:"foreignKey:DescriptionID" json:"description"`
	Video         string            `gorm:"type:text;not null" json:"video"`
	PreachedByID  uuid.UUID         `gorm:"type:uuid;not null" json:"-"`
	PreachedBy    User              `gorm:"foreignKey:PreachedByID" json:"preachedBy"`
	PublishedByID uuid.UUID         `gorm:"type:uuid;not null" json:"-"`
	PublishedBy   User              `gorm:"foreignKey:PublishedByID" json:"publishedBy"`
	UpdatedByID   uuid.UUID         `gorm:"type:uuid;not null" json:"-"`
	UpdatedBy     User              `gorm:"foreignKey:UpdatedByID" json:"updatedBy"`
	PublishedAt   time.Time         `gorm:"autoCreateTime" json:"publishedAt"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

// SermonInput is the create/update payload. publishedById doubles as the
// updater on writes, matching the admin dashboard's behavior.
type SermonInput struct {
	Topic         MultiLanguageInput `json:"topic"`
	Description   MultiLanguageInput `json:"description"`
	Video         string             `json:"video"`
	PreachedByID  string             `json:"preachedById"`
	PublishedByID string             `json:"publishedById"`
}

func (s *Sermon) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
