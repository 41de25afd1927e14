package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"c2hr/internal/cache"
	apperrors "c2hr/internal/errors"
	"c2hr/internal/model"
	"c2hr/internal/policy"
	"c2hr/internal/repository"
)

const jobCacheTTL = 5 * time.Minute

// JobInput carries the caller-supplied fields of a posting. The owning
// employer is never taken from input; it is always the authenticated caller.
type JobInput struct {
	Title        string
	Company      string
	Location     string
	Description  string
	Requirements []string
	Salary       string
	Type         model.JobType
}

// JobService handles the job catalog.
type JobService interface {
	List(ctx context.Context) ([]model.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Job, error)
	Create(ctx context.Context, caller *model.User, input JobInput) (*model.Job, error)
	Update(ctx context.Context, caller *model.User, id uuid.UUID, input JobInput) (*model.Job, error)
	Delete(ctx context.Context, caller *model.User, id uuid.UUID) error
	ListByEmployer(ctx context.Context, caller *model.User, employerID uuid.UUID) ([]model.Job, error)
}

type jobService struct {
	jobRepo repository.JobRepository
	cache   *cache.Client
}

// NewJobService builds a JobService with repository and cache.
func NewJobService(jobRepo repository.JobRepository, cache *cache.Client) JobService {
	return &jobService{jobRepo: jobRepo, cache: cache}
}

func (s *jobService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("job:%s", id.String())
}

// List returns all postings newest-first. Public, no authorization.
func (s *jobService) List(ctx context.Context) ([]model.Job, error) {
	return s.jobRepo.List(ctx)
}

// Get retrieves a single posting with its employer, via read-through cache.
func (s *jobService) Get(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Job
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	job, err := s.jobRepo.FindByIDWithEmployer(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("load job: %w", err)
	}

	if payload, err := json.Marshal(job); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, jobCacheTTL)
	}
	return job, nil
}

// Create authors a posting. Employers must be approved; consultants bypass
// the approval gate. The owning-employer field is set from the caller.
func (s *jobService) Create(ctx context.Context, caller *model.User, input JobInput) (*model.Job, error) {
	if policy.Can(caller, policy.ActionCreateJob) != policy.Allow {
		return nil, apperrors.ErrAccessDenied
	}
	if !policy.CanActAsEmployer(caller) {
		return nil, apperrors.ErrPendingApproval
	}

	jobType := input.Type
	if jobType == "" {
		jobType = model.JobTypeFullTime
	}
	if !jobType.Valid() {
		return nil, apperrors.ErrInvalidJobType
	}

	job := &model.Job{
		ID:           uuid.New(),
		Title:        input.Title,
		Company:      input.Company,
		Location:     input.Location,
		Description:  input.Description,
		Requirements: input.Requirements,
		Salary:       input.Salary,
		Type:         jobType,
		EmployerID:   caller.ID,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// Update mutates a posting. Only the owning employer may update; consultants
// cannot mutate employer-owned postings through the job routes.
func (s *jobService) Update(ctx context.Context, caller *model.User, id uuid.UUID, input JobInput) (*model.Job, error) {
	effect := policy.Can(caller, policy.ActionUpdateJob)
	if effect == policy.Deny {
		return nil, apperrors.ErrAccessDenied
	}

	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("load job: %w", err)
	}

	if effect == policy.AllowOwner && job.EmployerID != caller.ID {
		return nil, apperrors.ErrAccessDenied
	}

	if input.Type != "" && !input.Type.Valid() {
		return nil, apperrors.ErrInvalidJobType
	}

	job.Title = input.Title
	job.Company = input.Company
	job.Location = input.Location
	job.Description = input.Description
	job.Requirements = input.Requirements
	job.Salary = input.Salary
	if input.Type != "" {
		job.Type = input.Type
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return job, nil
}

// Delete removes a posting. Same ownership rule as Update.
func (s *jobService) Delete(ctx context.Context, caller *model.User, id uuid.UUID) error {
	effect := policy.Can(caller, policy.ActionDeleteJob)
	if effect == policy.Deny {
		return apperrors.ErrAccessDenied
	}

	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrJobNotFound
		}
		return fmt.Errorf("load job: %w", err)
	}

	if effect == policy.AllowOwner && job.EmployerID != caller.ID {
		return apperrors.ErrAccessDenied
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// ListByEmployer returns an employer's postings. Any employer or consultant
// may call this for any employer id; there is no ownership check.
func (s *jobService) ListByEmployer(ctx context.Context, caller *model.User, employerID uuid.UUID) ([]model.Job, error) {
	if policy.Can(caller, policy.ActionListEmployerJobs) != policy.Allow {
		return nil, apperrors.ErrAccessDenied
	}
	return s.jobRepo.ListByEmployer(ctx, employerID)
}
