package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skilledwork/jobboard-api/internal/models"
	"skilledwork/jobboard-api/internal/services"
)

type ApplicationHandler struct {
	appService     services.ApplicationService
	storageService services.StorageService
	maxFileSize    int64
	strictResume   bool
}

func NewApplicationHandler(
	appService services.ApplicationService,
	storageService services.StorageService,
	maxFileSize int64,
	strictResume bool,
) *ApplicationHandler {
	return &ApplicationHandler{
		appService:     appService,
		storageService: storageService,
		maxFileSize:    maxFileSize,
		strictResume:   strictResume,
	}
}

// HandleApply handles POST /jobs/apply
func (h *ApplicationHandler) HandleApply(c *fiber.Ctx) error {
	applicantID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	jobID, err := uuid.Parse(c.FormValue("job_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job_id format",
		})
	}

	resumeFile, err := c.FormFile("resumeFile")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Resume file is required",
		})
	}

	if resumeFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	// With strict mode off, unsupported types are accepted and score as
	// empty text.
	var allowedExts []string
	if h.strictResume {
		allowedExts = []string{".pdf", ".docx"}
	}

	filename, filePath, err := h.storageService.SaveFile(resumeFile, "resume", allowedExts)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	application, err := h.appService.Apply(c.UserContext(), services.ApplyInput{
		JobID:          jobID,
		ApplicantID:    applicantID,
		City:           c.FormValue("city"),
		PhoneNo:        c.FormValue("phone_no"),
		Experience:     c.FormValue("experience"),
		Description:    c.FormValue("description"),
		PortfolioLink:  c.FormValue("portfolio_link"),
		ResumeFilename: filename,
		ResumePath:     filePath,
	})
	if err != nil {
		// No application was recorded, so do not keep the orphaned upload.
		h.storageService.DeleteFile(filename)
		return failRequest(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Job application submitted successfully",
		"application": toApplicationResponse(application),
	})
}

// HandleGetByJob handles GET /jobs/:jobId/applications
func (h *ApplicationHandler) HandleGetByJob(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	applications, err := h.appService.ListByJob(jobID)
	if err != nil {
		return failRequest(c, err)
	}

	responses := make([]models.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, toApplicationResponse(&applications[i]))
	}

	return c.JSON(fiber.Map{
		"message":      "Applications fetched successfully",
		"applications": responses,
	})
}

// HandleGetMine handles GET /jobs/my-applications
func (h *ApplicationHandler) HandleGetMine(c *fiber.Ctx) error {
	applicantID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	applications, err := h.appService.ListByApplicant(applicantID)
	if err != nil {
		return failRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Applied jobs fetched successfully",
		"applications": applications,
	})
}

// HandleUpdateStatus handles PUT /jobs/applications/:id/status
func (h *ApplicationHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	var req models.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	application, err := h.appService.UpdateStatus(id, models.ApplicationStatus(req.Status))
	if err != nil {
		return failRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"message":     fmt.Sprintf("Application moved to %s", application.Status),
		"application": toApplicationResponse(application),
	})
}

func toApplicationResponse(app *models.JobApplication) models.ApplicationResponse {
	return models.ApplicationResponse{
		ID:            app.ID.String(),
		JobID:         app.JobID.String(),
		ApplicantID:   app.ApplicantID.String(),
		FullName:      app.FullName,
		Email:         app.Email,
		City:          app.City,
		JobTitle:      app.JobTitle,
		Experience:    app.Experience,
		Description:   app.Description,
		PortfolioLink: app.PortfolioLink,
		ResumeFile:    app.ResumeFile,
		Status:        string(app.Status),
		CVScore:       app.CVScore,
		MatchScore:    app.MatchScore,
		Feedback:      app.Feedback,
	}
}
