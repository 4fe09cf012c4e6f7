package models

import "gorm.io/gorm"

type Employer struct {
	gorm.Model

	UserID             uint   `gorm:"not null;uniqueIndex"`
	CompanyName        string `gorm:"not null"`
	CompanyDescription string
	Email              string `gorm:"not null"`

	// Relationships
	User        User         `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	JobListings []JobListing `gorm:"foreignKey:EmployerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
