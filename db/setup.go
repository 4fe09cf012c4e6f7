package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hirehub-dev/hirehub/internal/models"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	// TranslateError maps driver duplicate-key violations onto
	// gorm.ErrDuplicatedKey, which the store layer relies on.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.Employee{},
		&models.Employer{},
		&models.JobListing{},
		&models.ApplicationStatus{},
		&models.JobApplication{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}

// SeedApplicationStatuses ensures the four enumerated status rows exist;
// applying depends on the "AP" row being present.
func SeedApplicationStatuses() error {
	for _, code := range models.StatusCodes {
		status := models.ApplicationStatus{Code: code}

		if err := DB.FirstOrCreate(&status, models.ApplicationStatus{Code: code}).Error; err != nil {
			return err
		}
	}

	return nil
}
