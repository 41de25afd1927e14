package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanySize buckets headcount the way the registration form offers it.
type CompanySize string

const (
	CompanySize1To10     CompanySize = "1-10"
	CompanySize11To50    CompanySize = "11-50"
	CompanySize51To200   CompanySize = "51-200"
	CompanySize201To500  CompanySize = "201-500"
	CompanySize501To1000 CompanySize = "501-1000"
	CompanySize1000Plus  CompanySize = "1000+"
)

// Valid reports whether the size bucket is one of the known values.
func (s CompanySize) Valid() bool {
	switch s {
	case CompanySize1To10, CompanySize11To50, CompanySize51To200,
		CompanySize201To500, CompanySize501To1000, CompanySize1000Plus:
		return true
	}
	return false
}

// SocialLinks groups a company's public social media URLs.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Company is an employer's public profile, one per employer.
type Company struct {
	ID          uuid.UUID   `json:"id" gorm:"type:char(36);primaryKey"`
	EmployerID  uuid.UUID   `json:"employer" gorm:"type:char(36);not null;uniqueIndex"`
	Name        string      `json:"name" gorm:"size:255;not null"`
	Description string      `json:"description,omitempty" gorm:"type:text"`
	Website     string      `json:"website,omitempty" gorm:"size:512"`
	Industry    string      `json:"industry,omitempty" gorm:"size:255"`
	Size        CompanySize `json:"size" gorm:"type:varchar(20);default:'1-10'"`
	Location    string      `json:"location,omitempty" gorm:"size:255"`
	Founded     int         `json:"founded,omitempty"`
	Logo        string      `json:"logo,omitempty" gorm:"size:512"`
	CoverImage  string      `json:"coverImage,omitempty" gorm:"size:512"`
	SocialLinks SocialLinks `json:"socialLinks" gorm:"serializer:json"`
	Benefits    []string    `json:"benefits,omitempty" gorm:"serializer:json"`
	Culture     string      `json:"culture,omitempty" gorm:"type:text"`
	Mission     string      `json:"mission,omitempty" gorm:"type:text"`
	Values      []string    `json:"values,omitempty" gorm:"serializer:json"`
	CreatedAt   time.Time   `json:"date"`
	UpdatedAt   time.Time   `json:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
