package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "c2hr/internal/errors"
	"c2hr/internal/model"
	"c2hr/internal/policy"
	"c2hr/internal/repository"
)

// ApplicationService handles the application lifecycle.
type ApplicationService interface {
	Apply(ctx context.Context, caller *model.User, jobID uuid.UUID, coverLetter string) (*model.Application, error)
	ListForCandidate(ctx context.Context, caller *model.User) ([]model.Application, error)
	ListForJob(ctx context.Context, caller *model.User, jobID uuid.UUID) ([]model.Application, error)
	ListAll(ctx context.Context, caller *model.User) ([]model.Application, error)
	SetStatus(ctx context.Context, caller *model.User, id uuid.UUID, status model.ApplicationStatus) (*model.Application, error)
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	jobRepo         repository.JobRepository
}

// NewApplicationService builds an ApplicationService.
func NewApplicationService(applicationRepo repository.ApplicationRepository, jobRepo repository.JobRepository) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Apply submits a candidate's application for a job. The pre-check gives the
// friendly duplicate message on the sequential path; the compound unique
// index backstops it under concurrency, mapping to the same error.
func (s *applicationService) Apply(ctx context.Context, caller *model.User, jobID uuid.UUID, coverLetter string) (*model.Application, error) {
	if policy.Can(caller, policy.ActionApply) != policy.Allow {
		return nil, apperrors.ErrAccessDenied
	}

	if _, err := s.jobRepo.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("load job: %w", err)
	}

	existing, err := s.applicationRepo.FindByJobAndCandidate(ctx, jobID, caller.ID)
	if err == nil && existing != nil {
		return nil, apperrors.ErrAlreadyApplied
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing application: %w", err)
	}

	application := &model.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		CandidateID: caller.ID,
		CoverLetter: coverLetter,
		Status:      model.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, fmt.Errorf("create application: %w", err)
	}

	return application, nil
}

// ListForCandidate returns the caller's own applications newest-first, each
// enriched with the job's title, company, and location.
func (s *applicationService) ListForCandidate(ctx context.Context, caller *model.User) ([]model.Application, error) {
	if policy.Can(caller, policy.ActionListOwnApplications) != policy.Allow {
		return nil, apperrors.ErrAccessDenied
	}
	return s.applicationRepo.ListByCandidate(ctx, caller.ID)
}

// ListForJob returns a job's applications. Employers must own the job;
// consultants may read any job's applications.
func (s *applicationService) ListForJob(ctx context.Context, caller *model.User, jobID uuid.UUID) ([]model.Application, error) {
	effect := policy.Can(caller, policy.ActionListJobApplications)
	if effect == policy.Deny {
		return nil, apperrors.ErrAccessDenied
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("load job: %w", err)
	}

	if effect == policy.AllowOwner && job.EmployerID != caller.ID {
		return nil, apperrors.ErrAccessDenied
	}

	return s.applicationRepo.ListByJob(ctx, jobID)
}

// ListAll returns every application platform-wide. Consultant-only.
func (s *applicationService) ListAll(ctx context.Context, caller *model.User) ([]model.Application, error) {
	if policy.Can(caller, policy.ActionListAllApplications) != policy.Allow {
		return nil, apperrors.ErrAccessDenied
	}
	return s.applicationRepo.List(ctx)
}

// SetStatus moves an application to any of the four statuses. There is no
// transition table: any valid status is settable from any prior status.
func (s *applicationService) SetStatus(ctx context.Context, caller *model.User, id uuid.UUID, status model.ApplicationStatus) (*model.Application, error) {
	effect := policy.Can(caller, policy.ActionSetApplicationStatus)
	if effect == policy.Deny {
		return nil, apperrors.ErrAccessDenied
	}

	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	application, err := s.applicationRepo.FindByIDWithJob(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("load application: %w", err)
	}

	if effect == policy.AllowOwner {
		if application.JobInfo == nil || application.JobInfo.EmployerID != caller.ID {
			return nil, apperrors.ErrAccessDenied
		}
	}

	application.Status = status
	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
	}

	return application, nil
}
