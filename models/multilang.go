package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Language codes the site publishes in.
const (
	LangAr = "ar"
	LangEn = "en"
	LangFr = "fr"
)

// MultiLanguageText holds the parallel Arabic/English/French strings of one
// translatable value. Sermons, news and projects own their rows; they are
// created and deleted inside the owning record's transaction.
type MultiLanguageText struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Ar string    `gorm:"type:text;not null" json:"ar"`
	En string    `gorm:"type:text;not null" json:"en"`
	Fr string    `gorm:"type:text;not null" json:"fr"`
}

// Get returns the text for a language code, falling back to French (the
// site's default locale) for anything unknown.
func (m MultiLanguageText) Get(lang string) string {
	switch lang {
	case LangAr:
		return m.Ar
	case LangEn:
		return m.En
	default:
		return m.Fr
	}
}

// MultiLanguageInput is the wire form of a trilingual field.
type MultiLanguageInput struct {
	Ar string `json:"ar"`
	En string `json:"en"`
	Fr string `json:"fr"`
}

func (in MultiLanguageInput) Model() MultiLanguageText {
	return MultiLanguageText{Ar: in.Ar, En: in.En, Fr: in.Fr}
}

func (t *MultiLanguageText) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
