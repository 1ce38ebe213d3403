package repositories

import (
	"context"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
)

// WorkTypeRepository persists work-type and source-type categories.
type WorkTypeRepository interface {
	SaveWorkType(ctx context.Context, workType domain.WorkType) error
	FindWorkTypeByID(ctx context.Context, workTypeID string) (*domain.WorkType, error)
	ListWorkTypes(ctx context.Context, organizationID string) ([]domain.WorkType, error)
	SaveSourceType(ctx context.Context, sourceType domain.SourceType) error
	ListSourceTypes(ctx context.Context, organizationID string) ([]domain.SourceType, error)
}

// OfferRepository persists discount offers.
type OfferRepository interface {
	SaveOffer(ctx context.Context, offer domain.Offer) error
	FindOfferByID(ctx context.Context, offerID string) (*domain.Offer, error)
	ListOffers(ctx context.Context, organizationID string) ([]domain.Offer, error)
	SetOfferActive(ctx context.Context, offerID string, active bool, updatedBy string) error
}

// ExchangeRateRepository persists provided conversion rates.
type ExchangeRateRepository interface {
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
	// FindExchangeRate returns the latest effective rate for the pair, or
	// apperrors.ErrNotFound when none has been provided.
	FindExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)
}
