package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobType classifies the employment arrangement of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// Valid reports whether the job type is one of the known values.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// Job represents a posting authored by an employer (or a consultant acting on
// an employer's behalf). The set of applications is derived by query, never
// stored as an id list on the job itself.
type Job struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	Company      string    `json:"company" gorm:"size:255;not null"`
	Location     string    `json:"location" gorm:"size:255;not null"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	Requirements []string  `json:"requirements,omitempty" gorm:"serializer:json"`
	Salary       string    `json:"salary,omitempty" gorm:"size:255"`
	Type         JobType   `json:"type" gorm:"type:varchar(20);not null;default:'full-time';index"`
	EmployerID   uuid.UUID `json:"employer" gorm:"type:char(36);not null;index"`
	CreatedAt    time.Time `json:"date"`
	UpdatedAt    time.Time `json:"-"`

	// Relations
	EmployerInfo *User         `json:"employerInfo,omitempty" gorm:"foreignKey:EmployerID"`
	Applications []Application `json:"applications,omitempty" gorm:"foreignKey:JobID"`
}

// BeforeCreate sets UUID before creating the record.
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
