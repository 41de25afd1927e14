package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"c2hr/internal/model"
)

// BookmarkRepository defines bookmark persistence operations.
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *model.Bookmark) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (*model.Bookmark, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Bookmark, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository builds a GORM-backed repository.
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// Create inserts a new bookmark. The compound unique index on
// (user_id, job_id) enforces at-most-one per pair under concurrency.
func (r *bookmarkRepository) Create(ctx context.Context, bookmark *model.Bookmark) error {
	return r.db.WithContext(ctx).Create(bookmark).Error
}

func (r *bookmarkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Bookmark{}, "id = ?", id).Error
}

func (r *bookmarkRepository) FindByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (*model.Bookmark, error) {
	var bookmark model.Bookmark
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		First(&bookmark).Error; err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// ListByUser returns a user's bookmarks newest-first, each with the saved job
// and that job's employer preloaded.
func (r *bookmarkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Bookmark, error) {
	var bookmarks []model.Bookmark
	if err := r.db.WithContext(ctx).Preload("JobInfo.EmployerInfo").
		Where("user_id = ?", userID).
		Order("created_at DESC").Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}
