package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"c2hr/internal/model"
)

// ApplicationRepository defines application persistence operations.
type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) error
	Update(ctx context.Context, application *model.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	FindByIDWithJob(ctx context.Context, id uuid.UUID) (*model.Application, error)
	FindByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (*model.Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]model.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error)
	List(ctx context.Context) ([]model.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository builds a GORM-backed repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create inserts a new application. The compound unique index on
// (job_id, candidate_id) makes concurrent duplicate applies surface as
// gorm.ErrDuplicatedKey rather than a second row.
func (r *applicationRepository) Create(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) Update(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Save(application).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var application model.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// FindByIDWithJob loads an application with its parent job, needed for the
// ownership check on status updates.
func (r *applicationRepository) FindByIDWithJob(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var application model.Application
	if err := r.db.WithContext(ctx).Preload("JobInfo").
		Where("id = ?", id).First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (*model.Application, error) {
	var application model.Application
	if err := r.db.WithContext(ctx).
		Where("job_id = ? AND candidate_id = ?", jobID, candidateID).
		First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// ListByCandidate returns a candidate's applications newest-first with job
// details preloaded.
func (r *applicationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]model.Application, error) {
	var applications []model.Application
	if err := r.db.WithContext(ctx).Preload("JobInfo").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

// ListByJob returns a job's applications newest-first with candidate and job
// details preloaded. This derives the job→applications set by query; no id
// list is kept on the job record.
func (r *applicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error) {
	var applications []model.Application
	if err := r.db.WithContext(ctx).Preload("CandidateInfo").Preload("JobInfo").
		Where("job_id = ?", jobID).
		Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

// List returns every application platform-wide, newest-first.
func (r *applicationRepository) List(ctx context.Context) ([]model.Application, error) {
	var applications []model.Application
	if err := r.db.WithContext(ctx).Preload("CandidateInfo").Preload("JobInfo").
		Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}
