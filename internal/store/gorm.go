package store

import (
	"errors"

	"gorm.io/gorm"
)

// NewGormStore wires every repository to the same gorm handle. The handle must
// be opened with TranslateError so duplicate-key violations surface as
// gorm.ErrDuplicatedKey.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:        &gormUserRepository{db: db},
		Employees:    &gormEmployeeRepository{db: db},
		Employers:    &gormEmployerRepository{db: db},
		Listings:     &gormJobListingRepository{db: db},
		Applications: &gormJobApplicationRepository{db: db},
		Statuses:     &gormApplicationStatusRepository{db: db},
	}
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}
