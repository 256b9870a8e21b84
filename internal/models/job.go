package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "Open"
	JobStatusClosed JobStatus = "Closed"
)

type Job struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobTitle         string    `gorm:"type:text;not null" json:"job_title"`
	JobDescription   string    `gorm:"type:text;not null" json:"job_description"`
	JobType          string    `gorm:"type:text" json:"job_type"`
	JobMode          string    `gorm:"type:text" json:"job_mode"`
	ExperienceLevel  string    `gorm:"type:text" json:"experience_level"`
	Pay              string    `gorm:"type:text" json:"pay"`
	CompanyName      string    `gorm:"type:text" json:"company_name"`
	CompanyLocation  string    `gorm:"type:text" json:"company_location"`
	Status           JobStatus `gorm:"type:text;not null;default:'Open'" json:"status"`
	WorkingHours     string    `gorm:"type:text" json:"working_hours"`
	Qualifications   string    `gorm:"type:text" json:"qualifications"`
	Experience       string    `gorm:"type:text" json:"experience"`
	LastDateToApply  string    `gorm:"type:text" json:"last_date_to_apply"`
	ContactNumber    string    `gorm:"type:text" json:"contact_number"`
	RoleSummary      string    `gorm:"type:text" json:"role_summary"`
	Responsibilities string    `gorm:"type:text" json:"responsibilities"`
	AboutCompany     string    `gorm:"type:text" json:"about_company"`
	EmployerID       uuid.UUID `gorm:"type:uuid;not null;index" json:"employer_id"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}

// FullDescription joins the descriptive fields of the posting into the text
// the scoring engine matches resumes against. Empty fields are skipped so
// sparse postings do not accumulate separator noise.
func (j *Job) FullDescription() string {
	parts := make([]string, 0, 5)
	for _, part := range []string{
		j.JobDescription,
		j.RoleSummary,
		j.Responsibilities,
		j.Qualifications,
		j.Experience,
	} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}
