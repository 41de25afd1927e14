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

// UserService exposes profile, approval, and directory operations.
type UserService interface {
	UpdateProfile(ctx context.Context, caller *model.User, profile model.Profile) (*model.User, error)
	Approve(ctx context.Context, caller *model.User, targetID uuid.UUID) error
	ListCandidates(ctx context.Context, caller *model.User) ([]model.User, error)
	ListEmployers(ctx context.Context, caller *model.User) ([]model.User, error)
	ListAll(ctx context.Context, caller *model.User) ([]model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// UpdateProfile replaces the caller's profile block. Allowed for every role
// in any approval state; a user can only ever touch their own profile.
func (s *userService) UpdateProfile(ctx context.Context, caller *model.User, profile model.Profile) (*model.User, error) {
	if policy.Can(caller, policy.ActionUpdateProfile) != policy.Allow {
		return nil, apperrors.ErrAccessDenied
	}

	user, err := s.userRepo.FindByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	user.Profile = profile
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

// Approve marks an employer as allowed to post jobs. Consultant-only; the
// target must exist and must hold the employer role.
func (s *userService) Approve(ctx context.Context, caller *model.User, targetID uuid.UUID) error {
	if policy.Can(caller, policy.ActionApproveEmployer) != policy.Allow {
		return apperrors.ErrAccessDenied
	}

	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("load user: %w", err)
	}

	if target.Role != model.RoleEmployer {
		return apperrors.ErrNotAnEmployer
	}

	target.IsApproved = true
	if err := s.userRepo.Update(ctx, target); err != nil {
		return fmt.Errorf("approve employer: %w", err)
	}
	return nil
}

// ListCandidates returns every candidate. Consultant-only.
func (s *userService) ListCandidates(ctx context.Context, caller *model.User) ([]model.User, error) {
	if policy.Can(caller, policy.ActionListUsers) != policy.Allow {
		return nil, apperrors.ErrAccessDenied
	}
	return s.userRepo.ListByRole(ctx, model.RoleCandidate)
}

// ListEmployers returns every employer. Consultant-only.
func (s *userService) ListEmployers(ctx context.Context, caller *model.User) ([]model.User, error) {
	if policy.Can(caller, policy.ActionListUsers) != policy.Allow {
		return nil, apperrors.ErrAccessDenied
	}
	return s.userRepo.ListByRole(ctx, model.RoleEmployer)
}

// ListAll returns every user. Consultant-only.
func (s *userService) ListAll(ctx context.Context, caller *model.User) ([]model.User, error) {
	if policy.Can(caller, policy.ActionListUsers) != policy.Allow {
		return nil, apperrors.ErrAccessDenied
	}
	return s.userRepo.List(ctx)
}
