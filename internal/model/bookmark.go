package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bookmark is a user's saved-job relation. The compound unique index gives
// true at-most-one semantics per (user, job) under any call ordering.
type Bookmark struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user" gorm:"type:char(36);not null;uniqueIndex:idx_bookmarks_user_job"`
	JobID     uuid.UUID `json:"job" gorm:"type:char(36);not null;uniqueIndex:idx_bookmarks_user_job"`
	CreatedAt time.Time `json:"date"`

	// Relations
	JobInfo *Job `json:"jobInfo,omitempty" gorm:"foreignKey:JobID"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
