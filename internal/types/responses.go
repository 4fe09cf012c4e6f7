package types

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hirehub-dev/hirehub/internal/models"
)

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type EmployeeResponse struct {
	ID                uint   `json:"id"`
	User              uint   `json:"user"`
	Name              string `json:"name"`
	YearsOfExperience int    `json:"years_of_experience"`
	University        string `json:"university"`
	Degree            string `json:"degree"`
	Resume            string `json:"resume"`
	Email             string `json:"email"`
}

type EmployerResponse struct {
	ID                 uint   `json:"id"`
	User               uint   `json:"user"`
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
	Email              string `json:"email"`
}

// JobListingResponse exposes a fixed whitelist of listing fields; timestamps
// stay internal.
type JobListingResponse struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Salary      decimal.Decimal `json:"salary"`
	Company     uint            `json:"company"`
}

type ApplicationStatusResponse struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// JobApplicationResponse keeps job_listing as a bare identifier but expands
// the applicant and status inline.
type JobApplicationResponse struct {
	ID         uint                       `json:"id"`
	JobListing uint                       `json:"job_listing"`
	Applicant  EmployeeResponse           `json:"applicant"`
	Status     *ApplicationStatusResponse `json:"status"`
	AppliedAt  time.Time                  `json:"applied_at"`
}

func NewEmployeeResponse(employee models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                employee.ID,
		User:              employee.UserID,
		Name:              employee.Name,
		YearsOfExperience: employee.YearsOfExperience,
		University:        employee.University,
		Degree:            employee.Degree,
		Resume:            employee.Resume,
		Email:             employee.Email,
	}
}

func NewEmployerResponse(employer models.Employer) EmployerResponse {
	return EmployerResponse{
		ID:                 employer.ID,
		User:               employer.UserID,
		CompanyName:        employer.CompanyName,
		CompanyDescription: employer.CompanyDescription,
		Email:              employer.Email,
	}
}

func NewJobListingResponse(listing models.JobListing) JobListingResponse {
	return JobListingResponse{
		ID:          listing.ID,
		Title:       listing.Title,
		Description: listing.Description,
		Location:    listing.Location,
		Salary:      listing.Salary,
		Company:     listing.EmployerID,
	}
}

func NewApplicationStatusResponse(status models.ApplicationStatus) ApplicationStatusResponse {
	return ApplicationStatusResponse{
		ID:   status.ID,
		Code: status.Code,
		Name: status.DisplayName(),
	}
}

func NewJobApplicationResponse(application models.JobApplication) JobApplicationResponse {
	response := JobApplicationResponse{
		ID:         application.ID,
		JobListing: application.JobListingID,
		Applicant:  NewEmployeeResponse(application.Employee),
		AppliedAt:  application.AppliedAt,
	}

	if application.Status != nil {
		status := NewApplicationStatusResponse(*application.Status)
		response.Status = &status
	}

	return response
}
