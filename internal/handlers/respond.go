package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skilledwork/jobboard-api/internal/apperrors"
)

// failRequest maps the application error taxonomy onto HTTP statuses so
// clients can distinguish "already applied" from "resume unreadable".
// Anything outside the taxonomy is logged and reported opaquely.
func failRequest(c *fiber.Ctx, err error) error {
	var extractionErr *apperrors.ExtractionError

	switch {
	case errors.Is(err, apperrors.ErrJobNotFound),
		errors.Is(err, apperrors.ErrTaskNotFound),
		errors.Is(err, apperrors.ErrApplicantNotFound),
		errors.Is(err, apperrors.ErrApplicationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, apperrors.ErrAlreadyApplied):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, apperrors.ErrResumeRequired),
		errors.Is(err, apperrors.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.As(err, &extractionErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "resume file could not be read",
		})
	default:
		log.Printf("❌ Unexpected error: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}

// currentUserID reads the authenticated user from the X-User-ID header the
// gateway injects after session validation.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Get("X-User-ID"))
	if err != nil {
		return uuid.Nil, errors.New("missing or invalid X-User-ID header")
	}
	return id, nil
}
