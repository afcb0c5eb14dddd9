package models

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus is the employment type of a career listing.
type JobStatus string

const (
	JobStatusFullTime   JobStatus = "full-time"
	JobStatusPartTime   JobStatus = "part-time"
	JobStatusContract   JobStatus = "contract"
	JobStatusInternship JobStatus = "internship"
)

// Valid returns true for the known employment types.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusFullTime, JobStatusPartTime, JobStatusContract, JobStatusInternship:
		return true
	}
	return false
}

// Career is an open position advertised on the careers page.
type Career struct {
	ID             uuid.UUID
	Role           string
	Department     string
	Location       string
	ReportTo       string
	JobStatus      JobStatus
	Requirements   []string // ordered
	JobScope       []string // ordered
	OrganizationID uuid.UUID
	CreatedAt      time.Time
}
