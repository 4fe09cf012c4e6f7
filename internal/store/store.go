package store

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/hirehub-dev/hirehub/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

type EmployeeRepository interface {
	Create(employee *models.Employee) error
	GetByID(id uint) (*models.Employee, error)
	GetByUserID(userID uint) (*models.Employee, error)
	Update(employee *models.Employee, updates map[string]interface{}) error
}

type EmployerRepository interface {
	Create(employer *models.Employer) error
	GetByID(id uint) (*models.Employer, error)
	GetByUserID(userID uint) (*models.Employer, error)
	Update(employer *models.Employer, updates map[string]interface{}) error
}

// ListingFilters narrows a public listing query by exact match. Nil/empty
// fields are ignored.
type ListingFilters struct {
	Title      string
	Location   string
	EmployerID *uint
	Salary     *decimal.Decimal
}

type JobListingRepository interface {
	Create(listing *models.JobListing) error
	GetByID(id uint) (*models.JobListing, error)
	ListByEmployer(employerID uint) ([]models.JobListing, error)
	Filter(filters ListingFilters) ([]models.JobListing, error)
	Update(listing *models.JobListing, updates map[string]interface{}) error
}

type ApplicationStatusRepository interface {
	GetByCode(code string) (*models.ApplicationStatus, error)
}

type JobApplicationRepository interface {
	// GetOrCreate returns the application for the (listing, employee) pair,
	// creating it with the given status when absent. The second return value
	// reports whether a new row was created. A concurrent duplicate insert
	// surfaces as ErrConflict.
	GetOrCreate(listingID, employeeID, statusID uint) (*models.JobApplication, bool, error)
	GetByID(id uint) (*models.JobApplication, error)
	ListByListing(listingID uint, excludeStatusCode string) ([]models.JobApplication, error)
	ListByEmployee(employeeID uint) ([]models.JobApplication, error)
	SetStatus(application *models.JobApplication, statusID uint) error
	Delete(application *models.JobApplication) error
}

// Store bundles the per-entity repositories handed to the HTTP layer.
type Store struct {
	Users        UserRepository
	Employees    EmployeeRepository
	Employers    EmployerRepository
	Listings     JobListingRepository
	Applications JobApplicationRepository
	Statuses     ApplicationStatusRepository
}
