package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skilledwork/jobboard-api/internal/apperrors"
	"skilledwork/jobboard-api/internal/models"
)

type TaskRepository interface {
	Create(task *models.Task) error
	FindByID(id uuid.UUID) (*models.Task, error)
	FindAll() ([]models.Task, error)
	FindByUser(userID uuid.UUID) ([]models.Task, error)
	Update(task *models.Task) error
	Delete(id uuid.UUID) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create implements TaskRepository.
func (r *taskRepository) Create(task *models.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID implements TaskRepository.
func (r *taskRepository) FindByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// FindAll implements TaskRepository.
func (r *taskRepository) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	return tasks, nil
}

// FindByUser implements TaskRepository.
func (r *taskRepository) FindByUser(userID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user tasks: %w", err)
	}
	return tasks, nil
}

// Update implements TaskRepository.
func (r *taskRepository) Update(task *models.Task) error {
	result := r.db.Model(&models.Task{}).
		Where("id = ?", task.ID).
		Updates(task)
	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

// Delete implements TaskRepository.
func (r *taskRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Task{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}
