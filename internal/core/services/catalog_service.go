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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// catalogService manages the per-org lookup tables: work types, source
// types and offers.
type catalogService struct {
	BaseService
	workTypeRepo portsrepo.WorkTypeRepository
	offerRepo    portsrepo.OfferRepository
}

// NewCatalogService creates the catalog service.
func NewCatalogService(workTypeRepo portsrepo.WorkTypeRepository, offerRepo portsrepo.OfferRepository) portssvc.CatalogSvcFacade {
	return &catalogService{workTypeRepo: workTypeRepo, offerRepo: offerRepo}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) CreateWorkType(ctx context.Context, principal domain.Principal, req dto.CreateWorkTypeRequest) (*domain.WorkType, error) {
	if err := s.Authorize(ctx, principal, domain.CapManageDeals); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	workType := domain.WorkType{
		WorkTypeID:     uuid.NewString(),
		Name:           req.Name,
		OrganizationID: principal.OrganizationID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}

	if err := s.workTypeRepo.SaveWorkType(ctx, workType); err != nil {
		s.LogError(ctx, err, "failed to save work type")
		return nil, fmt.Errorf("failed to create work type in service: %w", err)
	}
	return &workType, nil
}

func (s *catalogService) ListWorkTypes(ctx context.Context, principal domain.Principal) ([]domain.WorkType, error) {
	workTypes, err := s.workTypeRepo.ListWorkTypes(ctx, principal.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work types in service: %w", err)
	}
	if workTypes == nil {
		workTypes = []domain.WorkType{}
	}
	return workTypes, nil
}

func (s *catalogService) CreateSourceType(ctx context.Context, principal domain.Principal, req dto.CreateSourceTypeRequest) (*domain.SourceType, error) {
	if err := s.Authorize(ctx, principal, domain.CapManageDeals); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sourceType := domain.SourceType{
		SourceTypeID:   uuid.NewString(),
		Name:           req.Name,
		OrganizationID: principal.OrganizationID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}

	if err := s.workTypeRepo.SaveSourceType(ctx, sourceType); err != nil {
		s.LogError(ctx, err, "failed to save source type")
		return nil, fmt.Errorf("failed to create source type in service: %w", err)
	}
	return &sourceType, nil
}

func (s *catalogService) ListSourceTypes(ctx context.Context, principal domain.Principal) ([]domain.SourceType, error) {
	sourceTypes, err := s.workTypeRepo.ListSourceTypes(ctx, principal.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list source types in service: %w", err)
	}
	if sourceTypes == nil {
		sourceTypes = []domain.SourceType{}
	}
	return sourceTypes, nil
}

func (s *catalogService) CreateOffer(ctx context.Context, principal domain.Principal, req dto.CreateOfferRequest) (*domain.Offer, error) {
	if err := s.Authorize(ctx, principal, domain.CapManageOffers); err != nil {
		return nil, err
	}
	if req.DiscountPercent.LessThan(decimal.Zero) || req.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("%w: discount percent must be between 0 and 100", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	offer := domain.Offer{
		OfferID:         uuid.NewString(),
		Name:            req.Name,
		DiscountPercent: req.DiscountPercent,
		IsActive:        true,
		OrganizationID:  principal.OrganizationID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}

	if err := s.offerRepo.SaveOffer(ctx, offer); err != nil {
		s.LogError(ctx, err, "failed to save offer")
		return nil, fmt.Errorf("failed to create offer in service: %w", err)
	}

	s.LogInfo(ctx, "offer created", slog.String("offer_id", offer.OfferID))
	return &offer, nil
}

func (s *catalogService) ListOffers(ctx context.Context, principal domain.Principal) ([]domain.Offer, error) {
	offers, err := s.offerRepo.ListOffers(ctx, principal.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers in service: %w", err)
	}
	if offers == nil {
		offers = []domain.Offer{}
	}
	return offers, nil
}

func (s *catalogService) SetOfferActive(ctx context.Context, principal domain.Principal, offerID string, active bool) error {
	if err := s.Authorize(ctx, principal, domain.CapManageOffers); err != nil {
		return err
	}

	offer, err := s.offerRepo.FindOfferByID(ctx, offerID)
	if err != nil {
		return err
	}
	if offer.OrganizationID != principal.OrganizationID {
		return fmt.Errorf("%w: offer belongs to another organization", apperrors.ErrForbidden)
	}

	if err := s.offerRepo.SetOfferActive(ctx, offerID, active, principal.UserID); err != nil {
		return fmt.Errorf("failed to toggle offer in service: %w", err)
	}
	return nil
}
