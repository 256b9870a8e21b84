package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skilledwork/jobboard-api/internal/models"
	"skilledwork/jobboard-api/internal/repositories"
	"skilledwork/jobboard-api/internal/services"
)

var galleryImageExts = []string{".jpg", ".jpeg", ".png"}

type TaskHandler struct {
	taskRepo       repositories.TaskRepository
	storageService services.StorageService
	maxFileSize    int64
}

func NewTaskHandler(
	taskRepo repositories.TaskRepository,
	storageService services.StorageService,
	maxFileSize int64,
) *TaskHandler {
	return &TaskHandler{
		taskRepo:       taskRepo,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleCreate handles POST /tasks
func (h *TaskHandler) HandleCreate(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var req models.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobTitle == "" || req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_title and job_description are required",
		})
	}

	// Gallery images are optional; a JSON body simply has none.
	var gallery []string
	if form, err := c.MultipartForm(); err == nil {
		for _, file := range form.File["galleryImages"] {
			if file.Size > h.maxFileSize {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Gallery image too large",
				})
			}
			filename, _, err := h.storageService.SaveFile(file, "gallery", galleryImageExts)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Only jpg, jpeg and png gallery images are allowed",
				})
			}
			gallery = append(gallery, filename)
		}
	}

	task := &models.Task{
		ID:             uuid.New(),
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		Budget:         req.Budget,
		ContactNumber:  req.ContactNumber,
		Category:       req.Category,
		GalleryImages:  gallery,
		Address:        req.Address,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		UserID:         userID,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.taskRepo.Create(task); err != nil {
		return failRequest(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Task created successfully",
		"task":    task,
	})
}

// HandleGetAll handles GET /tasks
func (h *TaskHandler) HandleGetAll(c *fiber.Ctx) error {
	tasks, err := h.taskRepo.FindAll()
	if err != nil {
		return failRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Tasks fetched successfully",
		"tasks":   tasks,
	})
}

// HandleGetByID handles GET /tasks/:id
func (h *TaskHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID format",
		})
	}

	task, err := h.taskRepo.FindByID(id)
	if err != nil {
		return failRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Task fetched successfully",
		"task":    task,
	})
}

// HandleGetMine handles GET /tasks/mine
func (h *TaskHandler) HandleGetMine(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	tasks, err := h.taskRepo.FindByUser(userID)
	if err != nil {
		return failRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "My tasks fetched successfully",
		"tasks":   tasks,
	})
}

// HandleUpdate handles PUT /tasks/:id
func (h *TaskHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID format",
		})
	}

	task, err := h.taskRepo.FindByID(id)
	if err != nil {
		return failRequest(c, err)
	}

	var req models.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobTitle != "" {
		task.JobTitle = req.JobTitle
	}
	if req.JobDescription != "" {
		task.JobDescription = req.JobDescription
	}
	if req.Budget != "" {
		task.Budget = req.Budget
	}
	if req.ContactNumber != "" {
		task.ContactNumber = req.ContactNumber
	}
	if req.Category != "" {
		task.Category = req.Category
	}
	if req.Address != "" {
		task.Address = req.Address
	}
	if req.Latitude != "" {
		task.Latitude = req.Latitude
	}
	if req.Longitude != "" {
		task.Longitude = req.Longitude
	}
	task.UpdatedAt = time.Now()

	if err := h.taskRepo.Update(task); err != nil {
		return failRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Task updated successfully",
		"task":    task,
	})
}

// HandleDelete handles DELETE /tasks/:id
func (h *TaskHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID format",
		})
	}

	if err := h.taskRepo.Delete(id); err != nil {
		return failRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Task deleted successfully",
	})
}
