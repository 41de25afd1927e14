package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role identifies what a user is allowed to do on the platform.
type Role string

const (
	RoleCandidate  Role = "candidate"
	RoleEmployer   Role = "employer"
	RoleConsultant Role = "consultant"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleEmployer, RoleConsultant:
		return true
	}
	return false
}

// Profile holds the free-form profile block a user maintains about themselves.
type Profile struct {
	Company    string   `json:"company,omitempty" gorm:"size:255"`
	Location   string   `json:"location,omitempty" gorm:"size:255"`
	Bio        string   `json:"bio,omitempty" gorm:"type:text"`
	Skills     []string `json:"skills,omitempty" gorm:"serializer:json"`
	Experience string   `json:"experience,omitempty" gorm:"size:255"`
	Resume     string   `json:"resume,omitempty" gorm:"size:512"`
	Mobile     string   `json:"mobile,omitempty" gorm:"size:50"`
	Country    string   `json:"country,omitempty" gorm:"size:100"`
	State      string   `json:"state,omitempty" gorm:"size:100"`
	Pincode    string   `json:"pincode,omitempty" gorm:"size:20"`
}

// User represents a registered account: candidate, employer, or consultant.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;index"`
	IsApproved   bool      `json:"isApproved" gorm:"not null"`
	Profile      Profile   `json:"profile" gorm:"embedded;embeddedPrefix:profile_"`
	CreatedAt    time.Time `json:"date"`
	UpdatedAt    time.Time `json:"-"`
}

// NewUser builds a user with the approval flag derived from the role:
// employers start unapproved, every other role is approved on registration.
func NewUser(name, email, passwordHash string, role Role) *User {
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		IsApproved:   role != RoleEmployer,
	}
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
