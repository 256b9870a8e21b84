package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a short odd-job posting created by a user, optionally with a
// gallery of photos describing the work.
type Task struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobTitle       string    `gorm:"type:text;not null" json:"job_title"`
	JobDescription string    `gorm:"type:text;not null" json:"job_description"`
	Budget         string    `gorm:"type:text" json:"budget"`
	ContactNumber  string    `gorm:"type:text" json:"contact_number"`
	Category       string    `gorm:"type:text" json:"category"`
	GalleryImages  []string  `gorm:"serializer:json;type:jsonb" json:"gallery_images"`
	Address        string    `gorm:"type:text" json:"address"`
	Latitude       string    `gorm:"type:text" json:"latitude"`
	Longitude      string    `gorm:"type:text" json:"longitude"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt      time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt      time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (t *Task) TableName() string {
	return "tasks"
}
