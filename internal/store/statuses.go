package store

import (
	"gorm.io/gorm"

	"github.com/hirehub-dev/hirehub/internal/models"
)

type gormApplicationStatusRepository struct {
	db *gorm.DB
}

func (r *gormApplicationStatusRepository) GetByCode(code string) (*models.ApplicationStatus, error) {
	var status models.ApplicationStatus

	if err := r.db.Where("code = ?", code).First(&status).Error; err != nil {
		return nil, translateError(err)
	}

	return &status, nil
}
