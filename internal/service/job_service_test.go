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

func approvedEmployer() *model.User {
	u := model.NewUser("Acme HR", "hr@acme.com", "hash", model.RoleEmployer)
	u.IsApproved = true
	return u
}

func TestJobService_Create(t *testing.T) {
	input := JobInput{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Build services",
		Salary:      "$100k",
	}

	tests := []struct {
		name          string
		caller        *model.User
		setupMock     func(*MockJobRepository)
		expectedError error
	}{
		{
			name:   "approved employer creates job",
			caller: approvedEmployer(),
			setupMock: func(m *MockJobRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Job")).Return(nil)
			},
		},
		{
			name:          "unapproved employer blocked",
			caller:        model.NewUser("Acme HR", "hr@acme.com", "hash", model.RoleEmployer),
			setupMock:     func(m *MockJobRepository) {},
			expectedError: apperrors.ErrPendingApproval,
		},
		{
			name:   "consultant bypasses approval gate",
			caller: model.NewUser("Staff", "staff@example.com", "hash", model.RoleConsultant),
			setupMock: func(m *MockJobRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Job")).Return(nil)
			},
		},
		{
			name:          "candidate denied",
			caller:        model.NewUser("Jane", "jane@example.com", "hash", model.RoleCandidate),
			setupMock:     func(m *MockJobRepository) {},
			expectedError: apperrors.ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockJobRepository)
			tt.setupMock(mockRepo)

			service := NewJobService(mockRepo, nil)
			job, err := service.Create(context.Background(), tt.caller, input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, job)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, job)
				// Ownership comes from the caller, never from the payload.
				assert.Equal(t, tt.caller.ID, job.EmployerID)
				// Omitted type defaults to full-time.
				assert.Equal(t, model.JobTypeFullTime, job.Type)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestJobService_Create_InvalidType(t *testing.T) {
	service := NewJobService(new(MockJobRepository), nil)
	_, err := service.Create(context.Background(), approvedEmployer(), JobInput{
		Title: "X",
		Type:  model.JobType("gig"),
	})
	assert.Equal(t, apperrors.ErrInvalidJobType, err)
}

func TestJobService_Update(t *testing.T) {
	owner := approvedEmployer()
	jobID := uuid.New()
	input := JobInput{Title: "Updated", Company: "Acme", Type: model.JobTypePartTime}

	tests := []struct {
		name          string
		caller        *model.User
		setupMock     func(*MockJobRepository)
		expectedError error
	}{
		{
			name:   "owner updates",
			caller: owner,
			setupMock: func(m *MockJobRepository) {
				m.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID, EmployerID: owner.ID, Type: model.JobTypeFullTime}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.Job")).Return(nil)
			},
		},
		{
			name:   "non-owner employer denied",
			caller: approvedEmployer(),
			setupMock: func(m *MockJobRepository) {
				m.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID, EmployerID: owner.ID}, nil)
			},
			expectedError: apperrors.ErrAccessDenied,
		},
		{
			name:          "consultant cannot mutate employer postings",
			caller:        model.NewUser("Staff", "staff@example.com", "hash", model.RoleConsultant),
			setupMock:     func(m *MockJobRepository) {},
			expectedError: apperrors.ErrAccessDenied,
		},
		{
			name:          "candidate denied before load",
			caller:        model.NewUser("Jane", "jane@example.com", "hash", model.RoleCandidate),
			setupMock:     func(m *MockJobRepository) {},
			expectedError: apperrors.ErrAccessDenied,
		},
		{
			name:   "missing job is not found even for non-owner",
			caller: approvedEmployer(),
			setupMock: func(m *MockJobRepository) {
				m.On("FindByID", mock.Anything, jobID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrJobNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockJobRepository)
			tt.setupMock(mockRepo)

			service := NewJobService(mockRepo, nil)
			job, err := service.Update(context.Background(), tt.caller, jobID, input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, job)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Updated", job.Title)
				assert.Equal(t, model.JobTypePartTime, job.Type)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestJobService_Delete(t *testing.T) {
	owner := approvedEmployer()
	jobID := uuid.New()

	t.Run("owner deletes", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID, EmployerID: owner.ID}, nil)
		mockRepo.On("Delete", mock.Anything, jobID).Return(nil)

		service := NewJobService(mockRepo, nil)
		assert.NoError(t, service.Delete(context.Background(), owner, jobID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owner denied", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID, EmployerID: owner.ID}, nil)

		service := NewJobService(mockRepo, nil)
		err := service.Delete(context.Background(), approvedEmployer(), jobID)
		assert.Equal(t, apperrors.ErrAccessDenied, err)
	})

	t.Run("missing job", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("FindByID", mock.Anything, jobID).Return(nil, gorm.ErrRecordNotFound)

		service := NewJobService(mockRepo, nil)
		err := service.Delete(context.Background(), owner, jobID)
		assert.Equal(t, apperrors.ErrJobNotFound, err)
	})
}

func TestJobService_Get(t *testing.T) {
	jobID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("FindByIDWithEmployer", mock.Anything, jobID).Return(&model.Job{ID: jobID, Title: "Backend Engineer"}, nil)

		service := NewJobService(mockRepo, nil)
		job, err := service.Get(context.Background(), jobID)
		assert.NoError(t, err)
		assert.Equal(t, "Backend Engineer", job.Title)
	})

	t.Run("missing", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("FindByIDWithEmployer", mock.Anything, jobID).Return(nil, gorm.ErrRecordNotFound)

		service := NewJobService(mockRepo, nil)
		_, err := service.Get(context.Background(), jobID)
		assert.Equal(t, apperrors.ErrJobNotFound, err)
	})
}

func TestJobService_ListByEmployer(t *testing.T) {
	employerID := uuid.New()

	t.Run("any employer may browse another employer's postings", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("ListByEmployer", mock.Anything, employerID).Return([]model.Job{{Title: "A"}}, nil)

		service := NewJobService(mockRepo, nil)
		jobs, err := service.ListByEmployer(context.Background(), approvedEmployer(), employerID)
		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
	})

	t.Run("candidate denied", func(t *testing.T) {
		service := NewJobService(new(MockJobRepository), nil)
		_, err := service.ListByEmployer(context.Background(), model.NewUser("Jane", "jane@example.com", "hash", model.RoleCandidate), employerID)
		assert.Equal(t, apperrors.ErrAccessDenied, err)
	})
}
