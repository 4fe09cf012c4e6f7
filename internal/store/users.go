package store

import (
	"gorm.io/gorm"

	"github.com/hirehub-dev/hirehub/internal/models"
)

type gormUserRepository struct {
	db *gorm.DB
}

func (r *gormUserRepository) Create(user *models.User) error {
	return translateError(r.db.Create(user).Error)
}

func (r *gormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User

	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translateError(err)
	}

	return &user, nil
}

func (r *gormUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User

	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateError(err)
	}

	return &user, nil
}
