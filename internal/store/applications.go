package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hirehub-dev/hirehub/internal/models"
)

type gormJobApplicationRepository struct {
	db *gorm.DB
}

func (r *gormJobApplicationRepository) GetOrCreate(listingID, employeeID, statusID uint) (*models.JobApplication, bool, error) {
	var existing models.JobApplication

	err := r.db.Where("job_listing_id = ? AND employee_id = ?", listingID, employeeID).First(&existing).Error

	if err == nil {
		return &existing, false, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	application := models.JobApplication{
		JobListingID: listingID,
		EmployeeID:   employeeID,
		AppliedAt:    time.Now(),
		StatusID:     &statusID,
	}

	if err := r.db.Create(&application).Error; err != nil {
		// Lost a race against a concurrent apply for the same pair; the
		// composite unique index keeps the table consistent.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, ErrConflict
		}
		return nil, false, err
	}

	return &application, true, nil
}

func (r *gormJobApplicationRepository) GetByID(id uint) (*models.JobApplication, error) {
	var application models.JobApplication

	err := r.db.
		Preload("JobListing").
		Preload("Employee").
		Preload("Status").
		First(&application, id).Error

	if err != nil {
		return nil, translateError(err)
	}

	return &application, nil
}

func (r *gormJobApplicationRepository) ListByListing(listingID uint, excludeStatusCode string) ([]models.JobApplication, error) {
	var applications []models.JobApplication

	err := r.db.
		Joins("LEFT JOIN application_statuses ON application_statuses.id = job_applications.status_id").
		Where("job_applications.job_listing_id = ?", listingID).
		Where("application_statuses.code IS NULL OR application_statuses.code <> ?", excludeStatusCode).
		Preload("Employee").
		Preload("Status").
		Find(&applications).Error

	if err != nil {
		return nil, translateError(err)
	}

	return applications, nil
}

func (r *gormJobApplicationRepository) ListByEmployee(employeeID uint) ([]models.JobApplication, error) {
	var applications []models.JobApplication

	err := r.db.
		Where("employee_id = ?", employeeID).
		Preload("Employee").
		Preload("Status").
		Find(&applications).Error

	if err != nil {
		return nil, translateError(err)
	}

	return applications, nil
}

func (r *gormJobApplicationRepository) SetStatus(application *models.JobApplication, statusID uint) error {
	if err := r.db.Model(application).Update("status_id", statusID).Error; err != nil {
		return translateError(err)
	}

	return translateError(r.db.Preload("JobListing").Preload("Employee").Preload("Status").First(application, application.ID).Error)
}

func (r *gormJobApplicationRepository) Delete(application *models.JobApplication) error {
	// Hard delete: a soft-deleted row would still hold the (listing, employee)
	// slot in the unique index and block re-applying after a withdrawal.
	return translateError(r.db.Unscoped().Delete(application).Error)
}
