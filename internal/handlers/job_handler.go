package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skilledwork/jobboard-api/internal/models"
	"skilledwork/jobboard-api/internal/repositories"
)

type JobHandler struct {
	jobRepo repositories.JobRepository
}

func NewJobHandler(jobRepo repositories.JobRepository) *JobHandler {
	return &JobHandler{jobRepo: jobRepo}
}

// HandleCreate handles POST /jobs
func (h *JobHandler) HandleCreate(c *fiber.Ctx) error {
	employerID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var req models.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobTitle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_title is required",
		})
	}

	if req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	status := models.JobStatusOpen
	if req.Status != "" {
		status = models.JobStatus(req.Status)
	}

	job := &models.Job{
		ID:               uuid.New(),
		JobTitle:         req.JobTitle,
		JobDescription:   req.JobDescription,
		JobType:          req.JobType,
		JobMode:          req.JobMode,
		ExperienceLevel:  req.ExperienceLevel,
		Pay:              req.Pay,
		CompanyName:      req.CompanyName,
		CompanyLocation:  req.CompanyLocation,
		Status:           status,
		WorkingHours:     req.WorkingHours,
		Qualifications:   req.Qualifications,
		Experience:       req.Experience,
		LastDateToApply:  req.LastDateToApply,
		ContactNumber:    req.ContactNumber,
		RoleSummary:      req.RoleSummary,
		Responsibilities: req.Responsibilities,
		AboutCompany:     req.AboutCompany,
		EmployerID:       employerID,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.jobRepo.Create(job); err != nil {
		return failRequest(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Job created successfully",
		"job":     job,
	})
}

// HandleGetAll handles GET /jobs
func (h *JobHandler) HandleGetAll(c *fiber.Ctx) error {
	status := models.JobStatus(c.Query("status", string(models.JobStatusOpen)))

	jobs, err := h.jobRepo.FindByStatus(status)
	if err != nil {
		return failRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Jobs fetched successfully",
		"jobs":    jobs,
	})
}

// HandleGetRecommended handles GET /jobs/recommended?title=...
func (h *JobHandler) HandleGetRecommended(c *fiber.Ctx) error {
	title := c.Query("title")
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}

	jobs, err := h.jobRepo.SearchOpenByTitle(title)
	if err != nil {
		return failRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Recommended open jobs fetched successfully",
		"jobs":    jobs,
	})
}

// HandleGetByID handles GET /jobs/:id
func (h *JobHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	job, err := h.jobRepo.FindByID(id)
	if err != nil {
		return failRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Job fetched successfully",
		"job":     job,
	})
}

// HandleGetMine handles GET /jobs/mine
func (h *JobHandler) HandleGetMine(c *fiber.Ctx) error {
	employerID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	jobs, err := h.jobRepo.FindByEmployer(employerID)
	if err != nil {
		return failRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "My jobs fetched successfully",
		"jobs":    jobs,
	})
}

// HandleUpdate handles PUT /jobs/:id
func (h *JobHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	job, err := h.jobRepo.FindByID(id)
	if err != nil {
		return failRequest(c, err)
	}

	var req models.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	applyJobUpdates(job, &req)
	job.UpdatedAt = time.Now()

	if err := h.jobRepo.Update(job); err != nil {
		return failRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Job updated successfully",
		"job":     job,
	})
}

// HandleDelete handles DELETE /jobs/:id
func (h *JobHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	if err := h.jobRepo.Delete(id); err != nil {
		return failRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Job deleted successfully",
	})
}

func applyJobUpdates(job *models.Job, req *models.CreateJobRequest) {
	if req.JobTitle != "" {
		job.JobTitle = req.JobTitle
	}
	if req.JobDescription != "" {
		job.JobDescription = req.JobDescription
	}
	if req.JobType != "" {
		job.JobType = req.JobType
	}
	if req.JobMode != "" {
		job.JobMode = req.JobMode
	}
	if req.ExperienceLevel != "" {
		job.ExperienceLevel = req.ExperienceLevel
	}
	if req.Pay != "" {
		job.Pay = req.Pay
	}
	if req.CompanyName != "" {
		job.CompanyName = req.CompanyName
	}
	if req.CompanyLocation != "" {
		job.CompanyLocation = req.CompanyLocation
	}
	if req.Status != "" {
		job.Status = models.JobStatus(req.Status)
	}
	if req.WorkingHours != "" {
		job.WorkingHours = req.WorkingHours
	}
	if req.Qualifications != "" {
		job.Qualifications = req.Qualifications
	}
	if req.Experience != "" {
		job.Experience = req.Experience
	}
	if req.LastDateToApply != "" {
		job.LastDateToApply = req.LastDateToApply
	}
	if req.ContactNumber != "" {
		job.ContactNumber = req.ContactNumber
	}
	if req.RoleSummary != "" {
		job.RoleSummary = req.RoleSummary
	}
	if req.Responsibilities != "" {
		job.Responsibilities = req.Responsibilities
	}
	if req.AboutCompany != "" {
		job.AboutCompany = req.AboutCompany
	}
}
