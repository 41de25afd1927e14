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

// BookmarkService handles a user's saved jobs.
type BookmarkService interface {
	Add(ctx context.Context, caller *model.User, jobID uuid.UUID) (*model.Bookmark, error)
	Remove(ctx context.Context, caller *model.User, jobID uuid.UUID) error
	List(ctx context.Context, caller *model.User) ([]model.Bookmark, error)
	Exists(ctx context.Context, caller *model.User, jobID uuid.UUID) (bool, error)
}

type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	jobRepo      repository.JobRepository
}

// NewBookmarkService builds a BookmarkService.
func NewBookmarkService(bookmarkRepo repository.BookmarkRepository, jobRepo repository.JobRepository) BookmarkService {
	return &bookmarkService{
		bookmarkRepo: bookmarkRepo,
		jobRepo:      jobRepo,
	}
}

// Add saves a job for the caller. The compound unique index makes duplicate
// detection race-free; the pre-check only supplies the friendly message.
func (s *bookmarkService) Add(ctx context.Context, caller *model.User, jobID uuid.UUID) (*model.Bookmark, error) {
	if policy.Can(caller, policy.ActionManageBookmarks) != policy.Allow {
		return nil, apperrors.ErrAccessDenied
	}

	if _, err := s.jobRepo.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("load job: %w", err)
	}

	existing, err := s.bookmarkRepo.FindByUserAndJob(ctx, caller.ID, jobID)
	if err == nil && existing != nil {
		return nil, apperrors.ErrAlreadyBookmarked
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing bookmark: %w", err)
	}

	bookmark := &model.Bookmark{
		ID:     uuid.New(),
		UserID: caller.ID,
		JobID:  jobID,
	}

	if err := s.bookmarkRepo.Create(ctx, bookmark); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyBookmarked
		}
		return nil, fmt.Errorf("create bookmark: %w", err)
	}

	return bookmark, nil
}

// Remove deletes the caller's bookmark for a job.
func (s *bookmarkService) Remove(ctx context.Context, caller *model.User, jobID uuid.UUID) error {
	if policy.Can(caller, policy.ActionManageBookmarks) != policy.Allow {
		return apperrors.ErrAccessDenied
	}

	bookmark, err := s.bookmarkRepo.FindByUserAndJob(ctx, caller.ID, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBookmarkNotFound
		}
		return fmt.Errorf("load bookmark: %w", err)
	}

	if err := s.bookmarkRepo.Delete(ctx, bookmark.ID); err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	return nil
}

// List returns the caller's bookmarks newest-first, each enriched with the
// saved job and that job's employer.
func (s *bookmarkService) List(ctx context.Context, caller *model.User) ([]model.Bookmark, error) {
	if policy.Can(caller, policy.ActionManageBookmarks) != policy.Allow {
		return nil, apperrors.ErrAccessDenied
	}
	return s.bookmarkRepo.ListByUser(ctx, caller.ID)
}

// Exists reports whether the caller has bookmarked a job.
func (s *bookmarkService) Exists(ctx context.Context, caller *model.User, jobID uuid.UUID) (bool, error) {
	if policy.Can(caller, policy.ActionManageBookmarks) != policy.Allow {
		return false, apperrors.ErrAccessDenied
	}

	_, err := s.bookmarkRepo.FindByUserAndJob(ctx, caller.ID, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check bookmark: %w", err)
	}
	return true, nil
}
