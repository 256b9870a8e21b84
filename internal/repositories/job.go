package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skilledwork/jobboard-api/internal/apperrors"
	"skilledwork/jobboard-api/internal/models"
)

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id uuid.UUID) (*models.Job, error)
	FindByStatus(status models.JobStatus) ([]models.Job, error)
	FindByEmployer(employerID uuid.UUID) ([]models.Job, error)
	SearchOpenByTitle(title string) ([]models.Job, error)
	Update(job *models.Job) error
	Delete(id uuid.UUID) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create implements JobRepository.
func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// FindByID implements JobRepository.
func (r *jobRepository) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

// FindByStatus implements JobRepository.
func (r *jobRepository) FindByStatus(status models.JobStatus) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}
	return jobs, nil
}

// FindByEmployer implements JobRepository.
func (r *jobRepository) FindByEmployer(employerID uuid.UUID) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find employer jobs: %w", err)
	}
	return jobs, nil
}

// SearchOpenByTitle implements JobRepository.
func (r *jobRepository) SearchOpenByTitle(title string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("status = ? AND job_title ILIKE ?", models.JobStatusOpen, "%"+title+"%").
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}
	return jobs, nil
}

// Update implements JobRepository.
func (r *jobRepository) Update(job *models.Job) error {
	result := r.db.Model(&models.Job{}).
		Where("id = ?", job.ID).
		Updates(job)
	if result.Error != nil {
		return fmt.Errorf("failed to update job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

// Delete implements JobRepository.
func (r *jobRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}
