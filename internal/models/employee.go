package models

import "gorm.io/gorm"

type Employee struct {
	gorm.Model

	UserID            uint   `gorm:"not null;uniqueIndex"`
	Name              string `gorm:"not null"`
	YearsOfExperience int    `gorm:"not null"`
	University        string
	Degree            string
	Resume            string // reference into blob storage, e.g. "resumes/<file>"
	Email             string `gorm:"not null"`

	// Relationships
	User            User             `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	JobApplications []JobApplication `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
