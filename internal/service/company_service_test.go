package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "c2hr/internal/errors"
	"c2hr/internal/model"
)

func TestCompanyService_Upsert(t *testing.T) {
	employer := approvedEmployer()

	tests := []struct {
		name          string
		caller        *model.User
		input         CompanyInput
		setupMock     func(*MockCompanyRepository)
		expectedError error
		wantSize      model.CompanySize
	}{
		{
			name:   "employer creates profile",
			caller: employer,
			input:  CompanyInput{Name: "Acme", Size: model.CompanySize51To200},
			setupMock: func(m *MockCompanyRepository) {
				m.On("Upsert", mock.Anything, mock.MatchedBy(func(c *model.Company) bool {
					return c.EmployerID == employer.ID && c.Size == model.CompanySize51To200
				})).Return(nil)
				m.On("FindByEmployer", mock.Anything, employer.ID).Return(&model.Company{Name: "Acme", EmployerID: employer.ID, Size: model.CompanySize51To200}, nil)
			},
			wantSize: model.CompanySize51To200,
		},
		{
			name:   "omitted size defaults to smallest band",
			caller: employer,
			input:  CompanyInput{Name: "Acme"},
			setupMock: func(m *MockCompanyRepository) {
				m.On("Upsert", mock.Anything, mock.AnythingOfType("*model.Company")).Return(nil)
				m.On("FindByEmployer", mock.Anything, employer.ID).Return(&model.Company{Name: "Acme", EmployerID: employer.ID, Size: model.CompanySize1To10}, nil)
			},
			wantSize: model.CompanySize1To10,
		},
		{
			name:          "unknown size band rejected",
			caller:        employer,
			input:         CompanyInput{Name: "Acme", Size: model.CompanySize("huge")},
			setupMock:     func(m *MockCompanyRepository) {},
			expectedError: apperrors.ErrInvalidCompanySize,
		},
		{
			name:          "candidate cannot hold a company profile",
			caller:        model.NewUser("Jane", "jane@example.com", "hash", model.RoleCandidate),
			input:         CompanyInput{Name: "Acme"},
			setupMock:     func(m *MockCompanyRepository) {},
			expectedError: apperrors.ErrAccessDenied,
		},
		{
			name:          "consultant cannot hold a company profile",
			caller:        model.NewUser("Staff", "staff@example.com", "hash", model.RoleConsultant),
			input:         CompanyInput{Name: "Acme"},
			setupMock:     func(m *MockCompanyRepository) {},
			expectedError: apperrors.ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCompanyRepository)
			tt.setupMock(mockRepo)

			service := NewCompanyService(mockRepo)
			company, err := service.Upsert(context.Background(), tt.caller, tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, company)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.caller.ID, company.EmployerID)
				assert.Equal(t, tt.wantSize, company.Size)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCompanyService_GetByEmployer(t *testing.T) {
	employerID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockCompanyRepository)
		mockRepo.On("FindByEmployer", mock.Anything, employerID).Return(&model.Company{Name: "Acme", EmployerID: employerID}, nil)

		service := NewCompanyService(mockRepo)
		company, err := service.GetByEmployer(context.Background(), employerID)
		assert.NoError(t, err)
		assert.Equal(t, "Acme", company.Name)
	})

	t.Run("missing", func(t *testing.T) {
		mockRepo := new(MockCompanyRepository)
		mockRepo.On("FindByEmployer", mock.Anything, employerID).Return(nil, gorm.ErrRecordNotFound)

		service := NewCompanyService(mockRepo)
		_, err := service.GetByEmployer(context.Background(), employerID)
		assert.Equal(t, apperrors.ErrCompanyNotFound, err)
	})
}
