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
	"github.com/shopspring/decimal"
)

// organizationService registers tenants. Registration is the one write that
// happens without an authenticated principal.
type organizationService struct {
	BaseService
	orgRepo portsrepo.OrganizationRepository
}

// NewOrganizationService creates the organization service.
func NewOrganizationService(orgRepo portsrepo.OrganizationRepository) portssvc.OrganizationSvcFacade {
	return &organizationService{orgRepo: orgRepo}
}

var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

// RegisterOrganization creates the organization and its first admin in one
// transaction. The admin gets serial 1 and the full admin role.
func (s *organizationService) RegisterOrganization(ctx context.Context, req dto.RegisterOrganizationRequest) (*domain.Organization, *domain.User, error) {
	existing, err := s.orgRepo.FindOrganizationByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, fmt.Errorf("failed to check organization email in service: %w", err)
	}
	if existing != nil {
		return nil, nil, fmt.Errorf("%w: organization email already registered", apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(req.AdminPassword)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash admin password in service: %w", err)
	}

	now := time.Now().UTC()
	org := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           req.OrganizationName,
		Email:          req.Email,
	}

	admin := domain.User{
		UserID:            uuid.NewString(),
		EmployeeNumber:    utils.FormatSerial(mapping.EmployeeSerialPrefix, 1),
		FullName:          req.AdminFullName,
		Email:             req.AdminEmail,
		Assignment:        domain.Unscoped(),
		Roles:             []domain.RoleName{domain.RoleAdmin},
		OrganizationID:    org.OrganizationID,
		CurrencyCode:      "USD",
		CommissionPercent: decimal.Zero,
		Bonus:             decimal.Zero,
	}

	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     admin.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: admin.UserID,
	}
	org.AuditFields = audit
	admin.AuditFields = audit

	if err := s.orgRepo.SaveOrganizationWithAdmin(ctx, org, admin, passwordHash); err != nil {
		s.LogError(ctx, err, "failed to register organization")
		return nil, nil, fmt.Errorf("failed to register organization in service: %w", err)
	}

	s.LogInfo(ctx, "organization registered",
		slog.String("organization_id", org.OrganizationID),
		slog.String("admin_id", admin.UserID))
	return &org, &admin, nil
}

func (s *organizationService) GetOrganization(ctx context.Context, principal domain.Principal, organizationID string) (*domain.Organization, error) {
	if organizationID != principal.OrganizationID {
		return nil, fmt.Errorf("%w: cannot read another organization", apperrors.ErrForbidden)
	}
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return org, nil
}
