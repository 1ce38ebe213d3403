package services

import (
	"context"
	"time"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
)

// CommissionSvcFacade computes the per-user commission sheet for a month.
type CommissionSvcFacade interface {
	// GetCommissions aggregates verified sales for the month containing
	// monthStart and applies each user's percent and bonus. When
	// baseCurrency is non-empty, cross-currency rows are converted with a
	// provided rate; a missing rate rejects the whole batch with
	// apperrors.ErrInvalidInput.
	GetCommissions(ctx context.Context, principal domain.Principal, monthStart time.Time, baseCurrency string) ([]domain.CommissionRow, error)
}

// SalesSvcFacade produces the dashboard aggregations.
type SalesSvcFacade interface {
	// WorkTypeReport groups in-scope deals per employee with a work-type
	// breakdown. Team/overall totals are sums over the employee rows.
	WorkTypeReport(ctx context.Context, principal domain.Principal, window domain.Window, teamID, userID string) (*domain.SalesReport, error)

	// TeamSales groups the employee rows by team.
	TeamSales(ctx context.Context, principal domain.Principal, window domain.Window) ([]domain.TeamSales, domain.SalesTotals, error)

	// TopPerformers ranks employees by totalSales descending, ties broken
	// by employee ID ascending.
	TopPerformers(ctx context.Context, principal domain.Principal, window domain.Window, limit int) ([]domain.EmployeeSales, error)
}
