package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusApplied         ApplicationStatus = "applied"
	StatusInterviewed     ApplicationStatus = "interviewed"
	StatusAppointmentSent ApplicationStatus = "appointment_sent"
	StatusHired           ApplicationStatus = "hired"
	StatusRejected        ApplicationStatus = "rejected"
)

// ValidApplicationStatus reports whether s is part of the application
// lifecycle.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case StatusApplied, StatusInterviewed, StatusAppointmentSent, StatusHired, StatusRejected:
		return true
	}
	return false
}

// JobApplication links an applicant to a job posting. The scores are written
// once when the application is created and never updated afterwards; the
// unique index on (job_id, applicant_id) guarantees at most one application
// per pair even under concurrent submissions.
type JobApplication struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobID         uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant" json:"job_id"`
	ApplicantID   uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant" json:"applicant_id"`
	FullName      string            `gorm:"type:text;not null" json:"full_name"`
	Email         string            `gorm:"type:text;not null" json:"email"`
	City          string            `gorm:"type:text" json:"city"`
	PhoneNo       string            `gorm:"type:text" json:"phone_no"`
	JobTitle      string            `gorm:"type:text" json:"job_title"`
	Experience    string            `gorm:"type:text" json:"experience"`
	Description   string            `gorm:"type:text" json:"description"`
	PortfolioLink string            `gorm:"type:text" json:"portfolio_link"`
	ResumeFile    string            `gorm:"type:text;not null" json:"resume_file"`
	Status        ApplicationStatus `gorm:"type:text;not null;default:'applied'" json:"status"`
	CVScore       int               `gorm:"not null;default:0" json:"cv_score"`
	MatchScore    int               `gorm:"not null;default:0" json:"match_score"`
	Feedback      string            `gorm:"type:text" json:"feedback"`
	CreatedAt     time.Time         `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"type:timestamp;default:now()" json:"updated_at"`

	// Job is preloaded for applicant-facing listings.
	Job Job `gorm:"foreignKey:JobID" json:"job,omitzero"`
}

func (a *JobApplication) TableName() string {
	return "job_applications"
}
