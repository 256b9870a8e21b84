package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"skilledwork/jobboard-api/internal/apperrors"
	"skilledwork/jobboard-api/internal/models"
)

type fakeJobRepo struct {
	jobs map[uuid.UUID]*models.Job
}

func (f *fakeJobRepo) Create(job *models.Job) error { f.jobs[job.ID] = job; return nil }
func (f *fakeJobRepo) FindByID(id uuid.UUID) (*models.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	return job, nil
}
func (f *fakeJobRepo) FindByStatus(models.JobStatus) ([]models.Job, error) { return nil, nil }
func (f *fakeJobRepo) FindByEmployer(uuid.UUID) ([]models.Job, error)      { return nil, nil }
func (f *fakeJobRepo) SearchOpenByTitle(string) ([]models.Job, error)      { return nil, nil }
func (f *fakeJobRepo) Update(*models.Job) error                            { return nil }
func (f *fakeJobRepo) Delete(uuid.UUID) error                              { return nil }

type fakeApplicationRepo struct {
	apps map[uuid.UUID]*models.JobApplication
}

func (f *fakeApplicationRepo) Create(app *models.JobApplication) error {
	for _, existing := range f.apps {
		if existing.JobID == app.JobID && existing.ApplicantID == app.ApplicantID {
			return apperrors.ErrAlreadyApplied
		}
	}
	f.apps[app.ID] = app
	return nil
}
func (f *fakeApplicationRepo) FindByID(id uuid.UUID) (*models.JobApplication, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	return app, nil
}
func (f *fakeApplicationRepo) FindByJob(jobID uuid.UUID) ([]models.JobApplication, error) {
	var out []models.JobApplication
	for _, app := range f.apps {
		if app.JobID == jobID {
			out = append(out, *app)
		}
	}
	return out, nil
}
func (f *fakeApplicationRepo) FindByApplicant(applicantID uuid.UUID) ([]models.JobApplication, error) {
	var out []models.JobApplication
	for _, app := range f.apps {
		if app.ApplicantID == applicantID {
			out = append(out, *app)
		}
	}
	return out, nil
}
func (f *fakeApplicationRepo) ExistsByJobAndApplicant(jobID, applicantID uuid.UUID) (bool, error) {
	for _, app := range f.apps {
		if app.JobID == jobID && app.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}
func (f *fakeApplicationRepo) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error {
	app, ok := f.apps[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	app.Status = status
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrApplicantNotFound
	}
	return user, nil
}

type stubExtractor struct {
	text  string
	err   error
	calls int
}

func (s *stubExtractor) ExtractText(string) (string, error) {
	s.calls++
	return s.text, s.err
}

type stubScorer struct {
	result ScoreResult
	calls  int
}

func (s *stubScorer) GetAIScores(context.Context, string, string) ScoreResult {
	s.calls++
	return s.result
}

type applyFixture struct {
	svc       ApplicationService
	jobRepo   *fakeJobRepo
	appRepo   *fakeApplicationRepo
	extractor *stubExtractor
	scorer    *stubScorer

	jobID       uuid.UUID
	applicantID uuid.UUID
}

func newApplyFixture(t *testing.T) *applyFixture {
	t.Helper()

	jobID := uuid.New()
	applicantID := uuid.New()

	jobRepo := &fakeJobRepo{jobs: map[uuid.UUID]*models.Job{
		jobID: {
			ID:             jobID,
			JobTitle:       "Backend Engineer",
			JobDescription: "Build APIs",
			RoleSummary:    "Ship backend features",
			Qualifications: "Go experience",
			Status:         models.JobStatusOpen,
		},
	}}
	appRepo := &fakeApplicationRepo{apps: map[uuid.UUID]*models.JobApplication{}}
	userRepo := &fakeUserRepo{users: map[uuid.UUID]*models.User{
		applicantID: {
			ID:        applicantID,
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			JobTitle:  "Software Engineer",
		},
	}}
	extractor := &stubExtractor{text: strings.Repeat("experienced software engineer resume ", 70)}
	scorer := &stubScorer{result: ScoreResult{CVScore: 72, MatchScore: 64, Feedback: FeedbackProfessional}}

	return &applyFixture{
		svc:         NewApplicationService(appRepo, jobRepo, userRepo, extractor, scorer),
		jobRepo:     jobRepo,
		appRepo:     appRepo,
		extractor:   extractor,
		scorer:      scorer,
		jobID:       jobID,
		applicantID: applicantID,
	}
}

func (f *applyFixture) input() ApplyInput {
	return ApplyInput{
		JobID:          f.jobID,
		ApplicantID:    f.applicantID,
		City:           "Lahore",
		Experience:     "3 years",
		Description:    "Interested in the role",
		ResumeFilename: "resume_abc.docx",
		ResumePath:     "/uploads/resume_abc.docx",
	}
}

func TestApplySuccess(t *testing.T) {
	f := newApplyFixture(t)

	app, err := f.svc.Apply(context.Background(), f.input())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if app.Status != models.StatusApplied {
		t.Fatalf("expected status applied, got %s", app.Status)
	}
	if app.CVScore != 72 || app.MatchScore != 64 {
		t.Fatalf("scores not persisted: cv=%d match=%d", app.CVScore, app.MatchScore)
	}
	if app.FullName != "Jane Doe" || app.Email != "jane@example.com" {
		t.Fatalf("applicant snapshot not copied: %q %q", app.FullName, app.Email)
	}
	if len(f.appRepo.apps) != 1 {
		t.Fatalf("expected exactly one persisted record, got %d", len(f.appRepo.apps))
	}
	if f.extractor.calls != 1 || f.scorer.calls != 1 {
		t.Fatalf("expected one extraction and one scoring call, got %d/%d", f.extractor.calls, f.scorer.calls)
	}
}

func TestApplyJobNotFound(t *testing.T) {
	f := newApplyFixture(t)

	input := f.input()
	input.JobID = uuid.New()

	_, err := f.svc.Apply(context.Background(), input)
	if !errors.Is(err, apperrors.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
	if f.extractor.calls != 0 {
		t.Fatal("extractor must not run for a missing job")
	}
}

func TestApplyDuplicateRejectedBeforeFileWork(t *testing.T) {
	f := newApplyFixture(t)

	if _, err := f.svc.Apply(context.Background(), f.input()); err != nil {
		t.Fatalf("first application failed: %v", err)
	}
	f.extractor.calls = 0
	f.scorer.calls = 0

	_, err := f.svc.Apply(context.Background(), f.input())
	if !errors.Is(err, apperrors.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
	if f.extractor.calls != 0 || f.scorer.calls != 0 {
		t.Fatalf("duplicate must be rejected before extraction/scoring, got %d/%d calls", f.extractor.calls, f.scorer.calls)
	}
	if len(f.appRepo.apps) != 1 {
		t.Fatalf("expected one record after duplicate attempt, got %d", len(f.appRepo.apps))
	}
}

func TestApplyResumeRequired(t *testing.T) {
	f := newApplyFixture(t)

	input := f.input()
	input.ResumePath = ""

	_, err := f.svc.Apply(context.Background(), input)
	if !errors.Is(err, apperrors.ErrResumeRequired) {
		t.Fatalf("expected ErrResumeRequired, got %v", err)
	}
}

func TestApplyExtractionFailureAborts(t *testing.T) {
	f := newApplyFixture(t)
	f.extractor.err = apperrors.NewExtractionError("/uploads/resume_abc.pdf", errors.New("bad xref"))

	_, err := f.svc.Apply(context.Background(), f.input())

	var extractionErr *apperrors.ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if len(f.appRepo.apps) != 0 {
		t.Fatal("no application may be persisted after an extraction failure")
	}
	if f.scorer.calls != 0 {
		t.Fatal("scoring must not run after an extraction failure")
	}
}

func TestApplyCancelledContextDoesNotPersist(t *testing.T) {
	f := newApplyFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.Apply(ctx, f.input())
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if len(f.appRepo.apps) != 0 {
		t.Fatal("cancelled submission must not persist a record")
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	f := newApplyFixture(t)

	app, err := f.svc.Apply(context.Background(), f.input())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = f.svc.UpdateStatus(app.ID, "promoted")
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}

	updated, err := f.svc.UpdateStatus(app.ID, models.StatusInterviewed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.StatusInterviewed {
		t.Fatalf("expected status interviewed, got %s", updated.Status)
	}
}
