package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"c2hr/internal/model"
)

// CompanyRepository defines company profile persistence operations.
type CompanyRepository interface {
	Upsert(ctx context.Context, company *model.Company) error
	FindByEmployer(ctx context.Context, employerID uuid.UUID) (*model.Company, error)
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository builds a GORM-backed repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// Upsert creates the employer's company profile or fully replaces it. The
// unique index on employer_id keys the conflict, so one document per employer
// holds under concurrent submissions.
func (r *companyRepository) Upsert(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employer_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "website", "industry", "size", "location",
			"founded", "logo", "cover_image", "social_links", "benefits",
			"culture", "mission", "values", "updated_at",
		}),
	}).Create(company).Error
}

func (r *companyRepository) FindByEmployer(ctx context.Context, employerID uuid.UUID) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}
