package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationStatus represents where an application sits in review.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Valid reports whether the status is one of the known values. Any valid
// status may be set from any prior status; there is no transition table.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application links a candidate to a job. The compound unique index keeps the
// at-most-one-per-(job, candidate) invariant under concurrent applies.
type Application struct {
	ID          uuid.UUID         `json:"id" gorm:"type:char(36);primaryKey"`
	JobID       uuid.UUID         `json:"job" gorm:"type:char(36);not null;uniqueIndex:idx_applications_job_candidate"`
	CandidateID uuid.UUID         `json:"candidate" gorm:"type:char(36);not null;uniqueIndex:idx_applications_job_candidate"`
	CoverLetter string            `json:"coverLetter,omitempty" gorm:"type:text"`
	Status      ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt   time.Time         `json:"date"`
	UpdatedAt   time.Time         `json:"-"`

	// Relations
	JobInfo       *Job  `json:"jobInfo,omitempty" gorm:"foreignKey:JobID"`
	CandidateInfo *User `json:"candidateInfo,omitempty" gorm:"foreignKey:CandidateID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
