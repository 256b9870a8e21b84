package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skilledwork/jobboard-api/internal/apperrors"
	"skilledwork/jobboard-api/internal/models"
)

type ApplicationRepository interface {
	Create(app *models.JobApplication) error
	FindByID(id uuid.UUID) (*models.JobApplication, error)
	FindByJob(jobID uuid.UUID) ([]models.JobApplication, error)
	FindByApplicant(applicantID uuid.UUID) ([]models.JobApplication, error)
	ExistsByJobAndApplicant(jobID, applicantID uuid.UUID) (bool, error)
	UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create implements ApplicationRepository. The unique index on
// (job_id, applicant_id) turns a lost duplicate-check race into a conflict
// instead of a second record.
func (r *applicationRepository) Create(app *models.JobApplication) error {
	if err := r.db.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// FindByID implements ApplicationRepository.
func (r *applicationRepository) FindByID(id uuid.UUID) (*models.JobApplication, error) {
	var app models.JobApplication
	if err := r.db.Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

// FindByJob implements ApplicationRepository.
func (r *applicationRepository) FindByJob(jobID uuid.UUID) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find applications: %w", err)
	}
	return apps, nil
}

// FindByApplicant implements ApplicationRepository.
func (r *applicationRepository) FindByApplicant(applicantID uuid.UUID) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.
		Preload("Job").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find applications: %w", err)
	}
	return apps, nil
}

// ExistsByJobAndApplicant implements ApplicationRepository.
func (r *applicationRepository) ExistsByJobAndApplicant(jobID, applicantID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existing application: %w", err)
	}
	return count > 0, nil
}

// UpdateStatus implements ApplicationRepository.
func (r *applicationRepository) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error {
	result := r.db.Model(&models.JobApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update application status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}
