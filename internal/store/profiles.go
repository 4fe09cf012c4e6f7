package store

import (
	"gorm.io/gorm"

	"github.com/hirehub-dev/hirehub/internal/models"
)

type gormEmployeeRepository struct {
	db *gorm.DB
}

func (r *gormEmployeeRepository) Create(employee *models.Employee) error {
	return translateError(r.db.Create(employee).Error)
}

func (r *gormEmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee

	if err := r.db.First(&employee, id).Error; err != nil {
		return nil, translateError(err)
	}

	return &employee, nil
}

func (r *gormEmployeeRepository) GetByUserID(userID uint) (*models.Employee, error) {
	var employee models.Employee

	if err := r.db.Where("user_id = ?", userID).First(&employee).Error; err != nil {
		return nil, translateError(err)
	}

	return &employee, nil
}

func (r *gormEmployeeRepository) Update(employee *models.Employee, updates map[string]interface{}) error {
	if err := r.db.Model(employee).Updates(updates).Error; err != nil {
		return translateError(err)
	}

	return translateError(r.db.First(employee, employee.ID).Error)
}

type gormEmployerRepository struct {
	db *gorm.DB
}

func (r *gormEmployerRepository) Create(employer *models.Employer) error {
	return translateError(r.db.Create(employer).Error)
}

func (r *gormEmployerRepository) GetByID(id uint) (*models.Employer, error) {
	var employer models.Employer

	if err := r.db.First(&employer, id).Error; err != nil {
		return nil, translateError(err)
	}

	return &employer, nil
}

func (r *gormEmployerRepository) GetByUserID(userID uint) (*models.Employer, error) {
	var employer models.Employer

	if err := r.db.Where("user_id = ?", userID).First(&employer).Error; err != nil {
		return nil, translateError(err)
	}

	return &employer, nil
}

func (r *gormEmployerRepository) Update(employer *models.Employer, updates map[string]interface{}) error {
	if err := r.db.Model(employer).Updates(updates).Error; err != nil {
		return translateError(err)
	}

	return translateError(r.db.First(employer, employer.ID).Error)
}
