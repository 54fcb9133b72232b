// Package store is the persistence gateway: every query the handlers run goes
// through here, against an injected gorm handle.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrMissingUserRef is returned when a payload references a user id that does
// not exist (sermon preacher, news publisher, ...). Handlers answer 400.
var ErrMissingUserRef = errors.New("referenced user does not exist")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ping checks the underlying connection, for the health endpoint.
func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// userExists is used inside write transactions to validate references.
func userExists(tx *gorm.DB, id any) (bool, error) {
	var n int64
	if err := tx.Table("users").Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
