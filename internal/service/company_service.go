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

// CompanyInput carries the caller-supplied fields of a company profile.
type CompanyInput struct {
	Name        string
	Description string
	Website     string
	Industry    string
	Size        model.CompanySize
	Location    string
	Founded     int
	Logo        string
	CoverImage  string
	SocialLinks model.SocialLinks
	Benefits    []string
	Culture     string
	Mission     string
	Values      []string
}

// CompanyService handles employer company profiles.
type CompanyService interface {
	Upsert(ctx context.Context, caller *model.User, input CompanyInput) (*model.Company, error)
	GetByEmployer(ctx context.Context, employerID uuid.UUID) (*model.Company, error)
}

type companyService struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyService builds a CompanyService.
func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

// Upsert creates or fully replaces the caller's company profile. Only
// employers hold one; the profile is always keyed by the caller.
func (s *companyService) Upsert(ctx context.Context, caller *model.User, input CompanyInput) (*model.Company, error) {
	if policy.Can(caller, policy.ActionUpsertCompany) != policy.Allow {
		return nil, apperrors.ErrAccessDenied
	}

	size := input.Size
	if size == "" {
		size = model.CompanySize1To10
	}
	if !size.Valid() {
		return nil, apperrors.ErrInvalidCompanySize
	}

	company := &model.Company{
		ID:          uuid.New(),
		EmployerID:  caller.ID,
		Name:        input.Name,
		Description: input.Description,
		Website:     input.Website,
		Industry:    input.Industry,
		Size:        size,
		Location:    input.Location,
		Founded:     input.Founded,
		Logo:        input.Logo,
		CoverImage:  input.CoverImage,
		SocialLinks: input.SocialLinks,
		Benefits:    input.Benefits,
		Culture:     input.Culture,
		Mission:     input.Mission,
		Values:      input.Values,
	}

	if err := s.companyRepo.Upsert(ctx, company); err != nil {
		return nil, fmt.Errorf("upsert company: %w", err)
	}

	// Re-read so a replace returns the stored record, not the insert attempt.
	stored, err := s.companyRepo.FindByEmployer(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("load company: %w", err)
	}
	return stored, nil
}

// GetByEmployer fetches any employer's company profile. Authentication is
// required by the route; there is deliberately no ownership check.
func (s *companyService) GetByEmployer(ctx context.Context, employerID uuid.UUID) (*model.Company, error) {
	company, err := s.companyRepo.FindByEmployer(ctx, employerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("load company: %w", err)
	}
	return company, nil
}
