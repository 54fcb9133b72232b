package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Firstnames  string    `gorm:"size:150;not null" json:"firstnames"`
	Email       string    `gorm:"size:150;uniqueIndex;not null" json:"email"`
	PhoneNumber string    `gorm:"size:30;not null" json:"phoneNumber"`
	IsAdmin     bool      `gorm:"not null;default:false" json:"isAdmin"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// UserPatch carries a partial update. A nil field means "not present in the
// payload", so an omitted field and an explicitly cleared one stay
// distinguishable.
type UserPatch struct {
	Name        *string `json:"name"`
	Firstnames  *string `json:"firstnames"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	IsAdmin     *bool   `json:"isAdmin"`
	Password    *string `json:"password"`
}

func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Firstnames == nil && p.Email == nil &&
		p.PhoneNumber == nil && p.IsAdmin == nil && p.Password == nil
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
