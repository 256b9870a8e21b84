package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the applicant profile consulted when an application is submitted.
// Registration, login and session issuance live outside this service; the
// API trusts the X-User-ID header its gateway injects.
type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FirstName        string    `gorm:"type:text;not null" json:"first_name"`
	LastName         string    `gorm:"type:text;not null" json:"last_name"`
	Email            string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PhoneNo          string    `gorm:"type:text" json:"phone_no"`
	JobTitle         string    `gorm:"type:text" json:"job_title"`
	Experience       string    `gorm:"type:text" json:"experience"`
	HighestEducation string    `gorm:"type:text" json:"highest_education"`
	Description      string    `gorm:"type:text" json:"description"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
