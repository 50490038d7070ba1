package models

import (
	"time"

	"github.com/google/uuid"
)

type DispatchStatus string

const (
	StatusSent   DispatchStatus = "sent"
	StatusFailed DispatchStatus = "failed"
)

// DispatchResult is the outcome of one application send attempt. Results
// are appended in input-job order and never mutated after creation.
type DispatchResult struct {
	JobID        string         `json:"job_id"`
	JobTitle     string         `json:"job_title"`
	EmployerName string         `json:"employer_name"`
	ApplyLink    string         `json:"apply_link"`
	SentTo       string         `json:"sent_to"`
	EmailID      string         `json:"email_id,omitempty"`
	Status       DispatchStatus `json:"status"`
	Message      string         `json:"message"`
}

// DispatchSummary is a pure aggregate over a result sequence, recomputed
// on every apply request.
type DispatchSummary struct {
	Total      int    `json:"total"`
	Successful int    `json:"successful"`
	Failed     int    `json:"failed"`
	Applicant  string `json:"applicant"`
}

type ApplyRequest struct {
	Jobs      []JobListing      `json:"jobs"`
	CVProfile *CandidateProfile `json:"cvProfile"`
}

type ApplyResponse struct {
	Summary DispatchSummary  `json:"summary"`
	Results []DispatchResult `json:"results"`
}

// Application is the persisted history row for one send attempt.
type Application struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobID          string         `gorm:"type:text" json:"job_id"`
	JobTitle       string         `gorm:"type:text" json:"job_title"`
	EmployerName   string         `gorm:"type:text" json:"employer_name"`
	ApplyLink      string         `gorm:"type:text" json:"apply_link"`
	SentTo         string         `gorm:"type:text" json:"sent_to"`
	ApplicantName  string         `gorm:"type:text" json:"applicant_name"`
	ApplicantEmail string         `gorm:"type:text;index" json:"applicant_email"`
	EmailID        string         `gorm:"type:text" json:"email_id,omitempty"`
	Status         DispatchStatus `gorm:"not null" json:"status"`
	Message        string         `gorm:"type:text" json:"message"`
	AppliedAt      time.Time      `gorm:"type:timestamp;default:now()" json:"applied_at"`
}

func (Application) TableName() string {
	return "applications"
}
