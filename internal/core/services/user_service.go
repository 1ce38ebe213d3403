package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SaPok5/prs-sub001/internal/apperrors"
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	portsrepo "github.com/SaPok5/prs-sub001/internal/core/ports/repositories"
	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/dto"
	"github.com/SaPok5/prs-sub001/internal/utils"
	"github.com/SaPok5/prs-sub001/internal/utils/mapping"
	"github.com/google/uuid"
)

// userService manages employees, their roles and team scope.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
	teamRepo portsrepo.TeamRepository
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepository, teamRepo portsrepo.TeamRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, teamRepo: teamRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, principal domain.Principal, req dto.CreateUserRequest) (*domain.User, error) {
	if err := s.Authorize(ctx, principal, domain.CapManageUsers); err != nil {
		return nil, err
	}

	roles := mapping.StringsToRoles(req.Roles)
	for _, role := range roles {
		if !role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
		}
	}

	assignment := domain.Unscoped()
	if req.TeamID != "" {
		team, err := s.teamRepo.FindTeamByID(ctx, req.TeamID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: team %q not found", apperrors.ErrValidation, req.TeamID)
			}
			return nil, fmt.Errorf("failed to validate team in service: %w", err)
		}
		if team.OrganizationID != principal.OrganizationID {
			return nil, fmt.Errorf("%w: team belongs to another organization", apperrors.ErrForbidden)
		}
		assignment = domain.TeamScoped(req.TeamID)
	}

	existing, _, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check user email in service: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	latest, found, err := s.userRepo.FindLatestEmployeeSerial(ctx, principal.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate employee serial: %w", err)
	}
	serial := 1
	if found {
		serial = latest + 1
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password in service: %w", err)
	}

	currency := req.CurrencyCode
	if currency == "" {
		currency = "USD"
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:            uuid.NewString(),
		EmployeeNumber:    utils.FormatSerial(mapping.EmployeeSerialPrefix, serial),
		FullName:          req.FullName,
		Email:             req.Email,
		Assignment:        assignment,
		Roles:             roles,
		OrganizationID:    principal.OrganizationID,
		CurrencyCode:      currency,
		CommissionPercent: req.CommissionPercent,
		Bonus:             req.Bonus,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user, passwordHash); err != nil {
		s.LogError(ctx, err, "failed to save user")
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	s.LogInfo(ctx, "user created",
		slog.String("user_id", user.UserID),
		slog.String("employee_number", user.EmployeeNumber))
	return &user, nil
}

func (s *userService) GetUser(ctx context.Context, principal domain.Principal, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.OrganizationID != principal.OrganizationID {
		return nil, fmt.Errorf("%w: user belongs to another organization", apperrors.ErrForbidden)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, principal domain.Principal, params dto.ListUsersParams) ([]domain.User, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	users, err := s.userRepo.ListUsers(ctx, principal.OrganizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users in service: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, principal domain.Principal, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := s.Authorize(ctx, principal, domain.CapManageUsers); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.OrganizationID != principal.OrganizationID {
		return nil, fmt.Errorf("%w: user belongs to another organization", apperrors.ErrForbidden)
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Roles != nil {
		roles := mapping.StringsToRoles(req.Roles)
		for _, role := range roles {
			if !role.Valid() {
				return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
			}
		}
		user.Roles = roles
	}
	if req.TeamID != nil {
		if *req.TeamID == "" {
			user.Assignment = domain.Unscoped()
		} else {
			team, err := s.teamRepo.FindTeamByID(ctx, *req.TeamID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: team %q not found", apperrors.ErrValidation, *req.TeamID)
				}
				return nil, fmt.Errorf("failed to validate team in service: %w", err)
			}
			if team.OrganizationID != principal.OrganizationID {
				return nil, fmt.Errorf("%w: team belongs to another organization", apperrors.ErrForbidden)
			}
			user.Assignment = domain.TeamScoped(*req.TeamID)
		}
	}
	if req.CurrencyCode != nil && *req.CurrencyCode != "" {
		user.CurrencyCode = *req.CurrencyCode
	}
	if req.CommissionPercent != nil {
		user.CommissionPercent = *req.CommissionPercent
	}
	if req.Bonus != nil {
		user.Bonus = *req.Bonus
	}

	now := time.Now().UTC()
	user.LastUpdatedAt = now
	user.LastUpdatedBy = principal.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "failed to update user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user in service: %w", err)
	}
	return user, nil
}

// DeleteUser soft-deletes so past deals and payment decisions keep their
// author.
func (s *userService) DeleteUser(ctx context.Context, principal domain.Principal, userID string) error {
	if err := s.Authorize(ctx, principal, domain.CapManageUsers); err != nil {
		return err
	}
	if userID == principal.UserID {
		return fmt.Errorf("%w: cannot delete own account", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.OrganizationID != principal.OrganizationID {
		return fmt.Errorf("%w: user belongs to another organization", apperrors.ErrForbidden)
	}

	now := time.Now().UTC()
	if err := s.userRepo.MarkUserDeleted(ctx, userID, principal.UserID, now); err != nil {
		return fmt.Errorf("failed to delete user in service: %w", err)
	}
	s.LogInfo(ctx, "user deleted", slog.String("user_id", userID))
	return nil
}
