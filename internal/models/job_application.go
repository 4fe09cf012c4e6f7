package models

import (
	"time"

	"gorm.io/gorm"
)

type JobApplication struct {
	gorm.Model

	JobListingID uint      `gorm:"not null;uniqueIndex:idx_listing_applicant"`
	EmployeeID   uint      `gorm:"not null;uniqueIndex:idx_listing_applicant"`
	AppliedAt    time.Time `gorm:"not null"`
	StatusID     *uint     `gorm:"index"`

	// Relationships
	JobListing JobListing         `gorm:"foreignKey:JobListingID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Employee   Employee           `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Status     *ApplicationStatus `gorm:"foreignKey:StatusID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
