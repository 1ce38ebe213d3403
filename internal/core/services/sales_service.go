package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
	portsrepo "github.com/SaPok5/prs-sub001/internal/core/ports/repositories"
	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
)

// salesService builds the dashboard aggregations. Every summation level
// is derived from the same per-deal rows, so team and overall totals are
// always exact sums of the employee rows beneath them.
type salesService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewSalesService creates the sales aggregation service.
func NewSalesService(reportingRepo portsrepo.ReportingRepository) portssvc.SalesSvcFacade {
	return &salesService{reportingRepo: reportingRepo}
}

var _ portssvc.SalesSvcFacade = (*salesService)(nil)

func (s *salesService) WorkTypeReport(ctx context.Context, principal domain.Principal, window domain.Window, teamID, userID string) (*domain.SalesReport, error) {
	if err := s.Authorize(ctx, principal, domain.CapViewSales); err != nil {
		return nil, err
	}

	figures, err := s.reportingRepo.GetDealFigures(ctx, principal.OrganizationID, window, teamID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deal figures in service: %w", err)
	}

	employees := groupByEmployee(figures)

	report := &domain.SalesReport{
		Employees:      employees,
		WorkTypeTotals: workTypeTotals(figures),
	}
	for _, emp := range employees {
		report.OverallTotals.Add(emp.Totals)
	}
	return report, nil
}

func (s *salesService) TeamSales(ctx context.Context, principal domain.Principal, window domain.Window) ([]domain.TeamSales, domain.SalesTotals, error) {
	if err := s.Authorize(ctx, principal, domain.CapViewSales); err != nil {
		return nil, domain.SalesTotals{}, err
	}

	figures, err := s.reportingRepo.GetDealFigures(ctx, principal.OrganizationID, window, "", "")
	if err != nil {
		return nil, domain.SalesTotals{}, fmt.Errorf("failed to load deal figures in service: %w", err)
	}

	employees := groupByEmployee(figures)

	// Unscoped employees roll up under an unnamed pseudo-team so the
	// overall total is still the exact sum over every employee row.
	byTeam := make(map[string]*domain.TeamSales)
	var teamOrder []string
	for _, emp := range employees {
		ts, ok := byTeam[emp.TeamID]
		if !ok {
			ts = &domain.TeamSales{TeamID: emp.TeamID, TeamName: emp.TeamName}
			byTeam[emp.TeamID] = ts
			teamOrder = append(teamOrder, emp.TeamID)
		}
		ts.Employees = append(ts.Employees, emp)
		ts.Totals.Add(emp.Totals)
	}
	sort.Strings(teamOrder)

	var overall domain.SalesTotals
	teams := make([]domain.TeamSales, 0, len(teamOrder))
	for _, id := range teamOrder {
		teams = append(teams, *byTeam[id])
		overall.Add(byTeam[id].Totals)
	}
	return teams, overall, nil
}

func (s *salesService) TopPerformers(ctx context.Context, principal domain.Principal, window domain.Window, limit int) ([]domain.EmployeeSales, error) {
	if err := s.Authorize(ctx, principal, domain.CapViewSales); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	figures, err := s.reportingRepo.GetDealFigures(ctx, principal.OrganizationID, window, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to load deal figures in service: %w", err)
	}

	employees := groupByEmployee(figures)
	sort.Slice(employees, func(i, j int) bool {
		cmp := employees[i].Totals.TotalSales.Cmp(employees[j].Totals.TotalSales)
		if cmp != 0 {
			return cmp > 0
		}
		return employees[i].UserID < employees[j].UserID
	})
	if len(employees) > limit {
		employees = employees[:limit]
	}
	return employees, nil
}

// groupByEmployee folds per-deal rows into one row per employee with a
// work-type breakdown. Output is ordered by user ID for stable pages.
func groupByEmployee(figures []domain.DealFigures) []domain.EmployeeSales {
	byUser := make(map[string]*domain.EmployeeSales)
	workTypes := make(map[string]map[string]*domain.WorkTypeAmount)
	var order []string

	for _, fig := range figures {
		emp, ok := byUser[fig.UserID]
		if !ok {
			emp = &domain.EmployeeSales{
				UserID:   fig.UserID,
				Name:     fig.UserName,
				TeamID:   fig.TeamID,
				TeamName: fig.TeamName,
			}
			byUser[fig.UserID] = emp
			workTypes[fig.UserID] = make(map[string]*domain.WorkTypeAmount)
			order = append(order, fig.UserID)
		}

		totals := figuresTotals(fig)
		emp.Totals.Add(totals)

		wt, ok := workTypes[fig.UserID][fig.WorkTypeID]
		if !ok {
			wt = &domain.WorkTypeAmount{WorkTypeID: fig.WorkTypeID, WorkTypeName: fig.WorkTypeName}
			workTypes[fig.UserID][fig.WorkTypeID] = wt
		}
		wt.SalesTotals.Add(totals)
	}

	sort.Strings(order)
	out := make([]domain.EmployeeSales, 0, len(order))
	for _, userID := range order {
		emp := byUser[userID]
		var wtIDs []string
		for id := range workTypes[userID] {
			wtIDs = append(wtIDs, id)
		}
		sort.Strings(wtIDs)
		for _, id := range wtIDs {
			emp.WorkTypes = append(emp.WorkTypes, *workTypes[userID][id])
		}
		out = append(out, *emp)
	}
	return out
}

// workTypeTotals folds per-deal rows into one row per work type across
// all in-scope employees.
func workTypeTotals(figures []domain.DealFigures) []domain.WorkTypeAmount {
	byType := make(map[string]*domain.WorkTypeAmount)
	var order []string
	for _, fig := range figures {
		wt, ok := byType[fig.WorkTypeID]
		if !ok {
			wt = &domain.WorkTypeAmount{WorkTypeID: fig.WorkTypeID, WorkTypeName: fig.WorkTypeName}
			byType[fig.WorkTypeID] = wt
			order = append(order, fig.WorkTypeID)
		}
		wt.SalesTotals.Add(figuresTotals(fig))
	}
	sort.Strings(order)
	out := make([]domain.WorkTypeAmount, 0, len(order))
	for _, id := range order {
		out = append(out, *byType[id])
	}
	return out
}

// figuresTotals turns one deal row into the shared metric triple. Dues
// are floored at zero per deal, before any summation, so an overpaid
// deal never offsets another deal's dues.
func figuresTotals(fig domain.DealFigures) domain.SalesTotals {
	deal := domain.Deal{DealValue: fig.DealValue}
	return domain.SalesTotals{
		TotalSales: fig.DealValue,
		TotalPaid:  fig.VerifiedPaid,
		TotalDues:  deal.DueAmount(fig.VerifiedPaid),
		DealCount:  1,
	}
}
