package models

import "gorm.io/gorm"

// Status codes stored in the application_statuses table. The human-readable
// form is derived, never stored.
const (
	StatusApplied    = "AP"
	StatusInProgress = "PR"
	StatusRejected   = "RE"
	StatusAccepted   = "AC"
)

var StatusCodes = []string{StatusApplied, StatusInProgress, StatusRejected, StatusAccepted}

var statusDisplayNames = map[string]string{
	StatusApplied:    "Applied",
	StatusInProgress: "In Progress",
	StatusRejected:   "Rejected",
	StatusAccepted:   "Accepted",
}

func IsValidStatusCode(code string) bool {
	_, ok := statusDisplayNames[code]
	return ok
}

type ApplicationStatus struct {
	gorm.Model

	Code string `gorm:"size:2;uniqueIndex;not null"`
}

func (s ApplicationStatus) DisplayName() string {
	if name, ok := statusDisplayNames[s.Code]; ok {
		return name
	}
	return s.Code
}
