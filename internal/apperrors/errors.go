// Package apperrors defines the failure kinds the API surfaces to clients.
// Handlers translate these into HTTP status codes; everything else is
// reported as an opaque server error.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrApplicantNotFound   = errors.New("applicant not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied for this job")
	ErrResumeRequired      = errors.New("resume file is required")
	ErrInvalidInput        = errors.New("invalid input")
)

// ExtractionError reports a resume file of a supported type that could not
// be parsed. It always carries the underlying cause.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func NewExtractionError(path string, err error) *ExtractionError {
	return &ExtractionError{Path: path, Err: err}
}
