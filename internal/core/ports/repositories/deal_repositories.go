package repositories

import (
	"context"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
)

// DealRepository persists deals.
type DealRepository interface {
	SaveDeal(ctx context.Context, deal domain.Deal) error
	FindDealByID(ctx context.Context, dealID string) (*domain.Deal, error)
	ListDeals(ctx context.Context, organizationID string, params DealListFilter, limit int, nextToken *string) ([]domain.Deal, *string, error)
	UpdateDeal(ctx context.Context, deal domain.Deal) error
	DeleteDeal(ctx context.Context, dealID string) error

	// FindLatestDealSerial returns the highest serial allocated in the
	// organization. found=false with a nil error means no deal exists yet;
	// a non-nil error means the lookup itself failed.
	FindLatestDealSerial(ctx context.Context, organizationID string) (serial int, found bool, err error)
}

// DealListFilter narrows the deal list.
type DealListFilter struct {
	ClientID string
	UserID   string
}
