package dto

import (
	"fmt"
	"time"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
)

// SalesReportParams selects the reporting window and scope. Either a named
// window or an explicit startDate/endDate pair must be given.
type SalesReportParams struct {
	Window    string `form:"window"`    // e.g. "this-month", "last-30-days"
	StartDate string `form:"startDate"` // YYYY-MM-DD
	EndDate   string `form:"endDate"`   // YYYY-MM-DD
	TeamID    string `form:"teamID"`
	UserID    string `form:"userID"`
}

// ResolveWindow turns the params into concrete bounds. Explicit dates win;
// otherwise the named shorthand is resolved against now. The end bound is
// exclusive and extends one day past endDate so the end date is inclusive.
func (p SalesReportParams) ResolveWindow(now time.Time) (domain.Window, error) {
	if p.StartDate != "" || p.EndDate != "" {
		start, err := time.Parse("2006-01-02", p.StartDate)
		if err != nil {
			return domain.Window{}, fmt.Errorf("invalid startDate %q: %w", p.StartDate, err)
		}
		end, err := time.Parse("2006-01-02", p.EndDate)
		if err != nil {
			return domain.Window{}, fmt.Errorf("invalid endDate %q: %w", p.EndDate, err)
		}
		if end.Before(start) {
			return domain.Window{}, fmt.Errorf("endDate %q precedes startDate %q", p.EndDate, p.StartDate)
		}
		return domain.Window{Start: start, End: end.AddDate(0, 0, 1)}, nil
	}
	if p.Window == "" {
		return domain.ResolveWindow(domain.WindowThisMonth, now)
	}
	return domain.ResolveWindow(p.Window, now)
}

// SalesReportResponse is the work-type dashboard payload.
type SalesReportResponse struct {
	StartDate      string                  `json:"startDate"`
	EndDate        string                  `json:"endDate"`
	Employees      []domain.EmployeeSales  `json:"employees"`
	WorkTypeTotals []domain.WorkTypeAmount `json:"workTypeTotals"`
	OverallTotals  domain.SalesTotals      `json:"overallTotals"`
}

// ToSalesReportResponse converts a domain report for the given window.
func ToSalesReportResponse(report *domain.SalesReport, w domain.Window) SalesReportResponse {
	return SalesReportResponse{
		StartDate:      w.Start.Format("2006-01-02"),
		EndDate:        w.End.AddDate(0, 0, -1).Format("2006-01-02"),
		Employees:      report.Employees,
		WorkTypeTotals: report.WorkTypeTotals,
		OverallTotals:  report.OverallTotals,
	}
}

// TeamSalesResponse is the by-team dashboard payload.
type TeamSalesResponse struct {
	StartDate      string             `json:"startDate"`
	EndDate        string             `json:"endDate"`
	TeamSales      []domain.TeamSales `json:"teamSales"`
	OverallMetrics domain.SalesTotals `json:"overallMetrics"`
}

// TopPerformersResponse ranks employees by total sales.
type TopPerformersResponse struct {
	StartDate  string                 `json:"startDate"`
	EndDate    string                 `json:"endDate"`
	Performers []domain.EmployeeSales `json:"performers"`
}
