package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"skilledwork/jobboard-api/internal/apperrors"
	"skilledwork/jobboard-api/internal/models"
	"skilledwork/jobboard-api/internal/repositories"
)

// ApplyInput carries one application attempt. ResumePath points at the
// already-saved upload; ResumeFilename is the stored name persisted on the
// record.
type ApplyInput struct {
	JobID          uuid.UUID
	ApplicantID    uuid.UUID
	City           string
	PhoneNo        string
	Experience     string
	Description    string
	PortfolioLink  string
	ResumeFilename string
	ResumePath     string
}

type ApplicationService interface {
	Apply(ctx context.Context, input ApplyInput) (*models.JobApplication, error)
	ListByJob(jobID uuid.UUID) ([]models.JobApplication, error)
	ListByApplicant(applicantID uuid.UUID) ([]models.JobApplication, error)
	UpdateStatus(id uuid.UUID, status models.ApplicationStatus) (*models.JobApplication, error)
}

type applicationService struct {
	appRepo   repositories.ApplicationRepository
	jobRepo   repositories.JobRepository
	userRepo  repositories.UserRepository
	extractor TextExtractor
	scorer    Scorer
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	extractor TextExtractor,
	scorer Scorer,
) ApplicationService {
	return &applicationService{
		appRepo:   appRepo,
		jobRepo:   jobRepo,
		userRepo:  userRepo,
		extractor: extractor,
		scorer:    scorer,
	}
}

// Apply implements ApplicationService. The step order is part of the
// contract: the duplicate check runs before any file processing so a
// rejected attempt never pays for extraction or embedding, and nothing is
// persisted until extraction and scoring have finished.
func (s *applicationService) Apply(ctx context.Context, input ApplyInput) (*models.JobApplication, error) {
	job, err := s.jobRepo.FindByID(input.JobID)
	if err != nil {
		return nil, err
	}

	exists, err := s.appRepo.ExistsByJobAndApplicant(input.JobID, input.ApplicantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	if input.ResumePath == "" {
		return nil, apperrors.ErrResumeRequired
	}

	applicant, err := s.userRepo.FindByID(input.ApplicantID)
	if err != nil {
		return nil, err
	}

	cvText, err := s.extractor.ExtractText(input.ResumePath)
	if err != nil {
		return nil, err
	}

	scores := s.scorer.GetAIScores(ctx, cvText, job.FullDescription())

	// The request may have been abandoned while scoring ran; a cancelled
	// submission must not leave an application behind.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("submission cancelled: %w", err)
	}

	application := &models.JobApplication{
		ID:            uuid.New(),
		JobID:         input.JobID,
		ApplicantID:   input.ApplicantID,
		FullName:      applicant.FullName(),
		Email:         applicant.Email,
		City:          input.City,
		PhoneNo:       input.PhoneNo,
		JobTitle:      applicant.JobTitle,
		Experience:    input.Experience,
		Description:   input.Description,
		PortfolioLink: input.PortfolioLink,
		ResumeFile:    input.ResumeFilename,
		Status:        models.StatusApplied,
		CVScore:       scores.CVScore,
		MatchScore:    scores.MatchScore,
		Feedback:      scores.Feedback,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := s.appRepo.Create(application); err != nil {
		return nil, err
	}

	log.Printf("📄 Application %s scored: cv=%d match=%d\n", application.ID, scores.CVScore, scores.MatchScore)

	return application, nil
}

// ListByJob implements ApplicationService.
func (s *applicationService) ListByJob(jobID uuid.UUID) ([]models.JobApplication, error) {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		return nil, err
	}
	return s.appRepo.FindByJob(jobID)
}

// ListByApplicant implements ApplicationService.
func (s *applicationService) ListByApplicant(applicantID uuid.UUID) ([]models.JobApplication, error) {
	return s.appRepo.FindByApplicant(applicantID)
}

// UpdateStatus implements ApplicationService.
func (s *applicationService) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) (*models.JobApplication, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidInput, status)
	}

	if err := s.appRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}

	return s.appRepo.FindByID(id)
}
