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
	"github.com/shopspring/decimal"
)

// commissionService computes the monthly commission sheet from each
// employee's verified sales.
type commissionService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	rateRepo      portsrepo.ExchangeRateRepository
}

// NewCommissionService creates the commission service.
func NewCommissionService(reportingRepo portsrepo.ReportingRepository, rateRepo portsrepo.ExchangeRateRepository) portssvc.CommissionSvcFacade {
	return &commissionService{reportingRepo: reportingRepo, rateRepo: rateRepo}
}

var _ portssvc.CommissionSvcFacade = (*commissionService)(nil)

// GetCommissions builds one row per employee for the month containing
// monthStart. The formula is sales * percent / 100 + bonus; zero-sales
// employees still earn their bonus. When baseCurrency is set, rows in a
// different currency are converted with a provided rate first, and a
// missing rate rejects the whole batch so a partially converted sheet
// never goes out.
func (s *commissionService) GetCommissions(ctx context.Context, principal domain.Principal, monthStart time.Time, baseCurrency string) ([]domain.CommissionRow, error) {
	if err := s.Authorize(ctx, principal, domain.CapViewCommissions); err != nil {
		return nil, err
	}

	monthStart = monthStart.UTC()
	window := domain.Window{
		Start: time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, time.UTC),
	}
	window.End = window.Start.AddDate(0, 1, 0)

	records, err := s.reportingRepo.GetUserSalesRecords(ctx, principal.OrganizationID, window)
	if err != nil {
		s.LogError(ctx, err, "failed to load sales records for commissions")
		return nil, fmt.Errorf("failed to load sales records in service: %w", err)
	}

	// Rates are looked up once per distinct source currency and the whole
	// batch is validated before any row is computed.
	rates := make(map[string]decimal.Decimal)
	if baseCurrency != "" {
		for _, rec := range records {
			if rec.Currency == "" || rec.Currency == baseCurrency {
				continue
			}
			if _, ok := rates[rec.Currency]; ok {
				continue
			}
			rate, err := s.rateRepo.FindExchangeRate(ctx, rec.Currency, baseCurrency)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: no exchange rate from %s to %s", apperrors.ErrInvalidInput, rec.Currency, baseCurrency)
				}
				return nil, fmt.Errorf("failed to load exchange rate in service: %w", err)
			}
			rates[rec.Currency] = rate.Rate
		}
	}

	rows := make([]domain.CommissionRow, 0, len(records))
	for _, rec := range records {
		row := domain.CommissionRow{
			UserID:              rec.UserID,
			Name:                rec.FullName,
			Currency:            rec.Currency,
			TotalSales:          rec.TotalSales,
			TotalReceivedAmount: rec.TotalSales,
			CommissionPercent:   rec.CommissionPercent,
			Rate:                decimal.NewFromInt(1),
			Bonus:               rec.Bonus,
			ConvertedAmount:     rec.TotalSales,
			BaseCurrency:        baseCurrency,
		}
		if baseCurrency != "" && rec.Currency != "" && rec.Currency != baseCurrency {
			row.Rate = rates[rec.Currency]
			row.ConvertedAmount = rec.TotalSales.Mul(row.Rate)
		}
		row.TotalCommission = domain.CommissionFromSales(row.ConvertedAmount, rec.CommissionPercent, rec.Bonus)
		rows = append(rows, row)
	}

	s.LogDebug(ctx, "commission sheet computed",
		slog.Time("month_start", window.Start),
		slog.Int("rows", len(rows)))
	return rows, nil
}
