package store

import (
	"gorm.io/gorm"

	"github.com/hirehub-dev/hirehub/internal/models"
)

type gormJobListingRepository struct {
	db *gorm.DB
}

func (r *gormJobListingRepository) Create(listing *models.JobListing) error {
	return translateError(r.db.Create(listing).Error)
}

func (r *gormJobListingRepository) GetByID(id uint) (*models.JobListing, error) {
	var listing models.JobListing

	if err := r.db.Preload("Employer").First(&listing, id).Error; err != nil {
		return nil, translateError(err)
	}

	return &listing, nil
}

func (r *gormJobListingRepository) ListByEmployer(employerID uint) ([]models.JobListing, error) {
	var listings []models.JobListing

	if err := r.db.Where("employer_id = ?", employerID).Find(&listings).Error; err != nil {
		return nil, translateError(err)
	}

	return listings, nil
}

func (r *gormJobListingRepository) Filter(filters ListingFilters) ([]models.JobListing, error) {
	query := r.db.Model(&models.JobListing{})

	if filters.Title != "" {
		query = query.Where("title = ?", filters.Title)
	}

	if filters.Location != "" {
		query = query.Where("location = ?", filters.Location)
	}

	if filters.EmployerID != nil {
		query = query.Where("employer_id = ?", *filters.EmployerID)
	}

	if filters.Salary != nil {
		query = query.Where("salary = ?", *filters.Salary)
	}

	var listings []models.JobListing

	if err := query.Find(&listings).Error; err != nil {
		return nil, translateError(err)
	}

	return listings, nil
}

func (r *gormJobListingRepository) Update(listing *models.JobListing, updates map[string]interface{}) error {
	if err := r.db.Model(listing).Updates(updates).Error; err != nil {
		return translateError(err)
	}

	return translateError(r.db.First(listing, listing.ID).Error)
}
