package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type JobListing struct {
	gorm.Model

	Title       string `gorm:"not null"`
	Description string
	Location    string          `gorm:"not null"`
	Salary      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	EmployerID  uint            `gorm:"not null;index"`

	// Relationships
	Employer        Employer         `gorm:"foreignKey:EmployerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	JobApplications []JobApplication `gorm:"foreignKey:JobListingID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
