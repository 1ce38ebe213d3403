package services

import (
	"context"
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

// dealService manages deals and allocates their org-scoped serials.
type dealService struct {
	BaseService
	dealRepo    portsrepo.DealRepository
	clientRepo  portsrepo.ClientRepository
	paymentRepo portsrepo.PaymentRepository
}

// NewDealService creates the deal service.
func NewDealService(dealRepo portsrepo.DealRepository, clientRepo portsrepo.ClientRepository, paymentRepo portsrepo.PaymentRepository) portssvc.DealSvcFacade {
	return &dealService{dealRepo: dealRepo, clientRepo: clientRepo, paymentRepo: paymentRepo}
}

var _ portssvc.DealSvcFacade = (*dealService)(nil)

func (s *dealService) CreateDeal(ctx context.Context, principal domain.Principal, req dto.CreateDealRequest) (*domain.Deal, error) {
	if err := s.Authorize(ctx, principal, domain.CapManageDeals); err != nil {
		return nil, err
	}
	if req.DealValue.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: deal value must be positive", apperrors.ErrValidation)
	}
	if req.DueDate.Before(req.DealDate) {
		return nil, fmt.Errorf("%w: due date precedes deal date", apperrors.ErrValidation)
	}

	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if client.OrganizationID != principal.OrganizationID {
		return nil, fmt.Errorf("%w: client belongs to another organization", apperrors.ErrForbidden)
	}

	// The serial lookup distinguishes "no deals yet" from a failed read;
	// a failed read must not silently restart numbering at 1.
	latest, found, err := s.dealRepo.FindLatestDealSerial(ctx, principal.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate deal serial: %w", err)
	}
	serial := 1
	if found {
		serial = latest + 1
	}

	ownerID := req.UserID
	if ownerID == "" {
		ownerID = principal.UserID
	}

	now := time.Now().UTC()
	deal := domain.Deal{
		DealID:         uuid.NewString(),
		DealNumber:     utils.FormatSerial(mapping.DealSerialPrefix, serial),
		DealName:       req.DealName,
		ClientID:       req.ClientID,
		WorkTypeID:     req.WorkTypeID,
		SourceTypeID:   req.SourceTypeID,
		DealValue:      req.DealValue,
		DealDate:       req.DealDate,
		DueDate:        req.DueDate,
		Remarks:        req.Remarks,
		UserID:         ownerID,
		OrganizationID: principal.OrganizationID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}

	if err := s.dealRepo.SaveDeal(ctx, deal); err != nil {
		s.LogError(ctx, err, "failed to save deal", slog.String("client_id", req.ClientID))
		return nil, fmt.Errorf("failed to create deal in service: %w", err)
	}

	s.LogInfo(ctx, "deal created",
		slog.String("deal_id", deal.DealID),
		slog.String("deal_number", deal.DealNumber))
	return &deal, nil
}

// GetDeal loads a deal with all its payments so collection figures can be
// derived at the edge.
func (s *dealService) GetDeal(ctx context.Context, principal domain.Principal, dealID string) (*domain.Deal, error) {
	deal, err := s.dealRepo.FindDealByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.OrganizationID != principal.OrganizationID {
		return nil, fmt.Errorf("%w: deal belongs to another organization", apperrors.ErrForbidden)
	}
	payments, err := s.paymentRepo.ListPaymentsByDeal(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deal payments in service: %w", err)
	}
	deal.Payments = payments
	return deal, nil
}

func (s *dealService) ListDeals(ctx context.Context, principal domain.Principal, params dto.ListDealsParams) ([]domain.Deal, *string, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	filter := portsrepo.DealListFilter{ClientID: params.ClientID, UserID: params.UserID}
	deals, next, err := s.dealRepo.ListDeals(ctx, principal.OrganizationID, filter, limit, params.NextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list deals in service: %w", err)
	}
	return deals, next, nil
}

func (s *dealService) UpdateDeal(ctx context.Context, principal domain.Principal, dealID string, req dto.UpdateDealRequest) (*domain.Deal, error) {
	if err := s.Authorize(ctx, principal, domain.CapManageDeals); err != nil {
		return nil, err
	}

	deal, err := s.dealRepo.FindDealByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.OrganizationID != principal.OrganizationID {
		return nil, fmt.Errorf("%w: deal belongs to another organization", apperrors.ErrForbidden)
	}

	if req.DealName != nil {
		deal.DealName = *req.DealName
	}
	if req.DealValue != nil {
		if req.DealValue.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: deal value must be positive", apperrors.ErrValidation)
		}
		deal.DealValue = *req.DealValue
	}
	if req.DealDate != nil {
		deal.DealDate = *req.DealDate
	}
	if req.DueDate != nil {
		deal.DueDate = *req.DueDate
	}
	if req.Remarks != nil {
		deal.Remarks = *req.Remarks
	}
	if deal.DueDate.Before(deal.DealDate) {
		return nil, fmt.Errorf("%w: due date precedes deal date", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	deal.LastUpdatedAt = now
	deal.LastUpdatedBy = principal.UserID

	if err := s.dealRepo.UpdateDeal(ctx, *deal); err != nil {
		s.LogError(ctx, err, "failed to update deal", slog.String("deal_id", dealID))
		return nil, fmt.Errorf("failed to update deal in service: %w", err)
	}
	return deal, nil
}

func (s *dealService) DeleteDeal(ctx context.Context, principal domain.Principal, dealID string) error {
	if err := s.Authorize(ctx, principal, domain.CapManageDeals); err != nil {
		return err
	}

	deal, err := s.dealRepo.FindDealByID(ctx, dealID)
	if err != nil {
		return err
	}
	if deal.OrganizationID != principal.OrganizationID {
		return fmt.Errorf("%w: deal belongs to another organization", apperrors.ErrForbidden)
	}

	// Deals with recorded payments stay; deleting them would orphan the
	// verification history.
	payments, err := s.paymentRepo.ListPaymentsByDeal(ctx, dealID)
	if err != nil {
		return fmt.Errorf("failed to check deal payments in service: %w", err)
	}
	if len(payments) > 0 {
		return fmt.Errorf("%w: deal has recorded payments", apperrors.ErrConflict)
	}

	if err := s.dealRepo.DeleteDeal(ctx, dealID); err != nil {
		return fmt.Errorf("failed to delete deal in service: %w", err)
	}
	s.LogInfo(ctx, "deal deleted", slog.String("deal_id", dealID))
	return nil
}
