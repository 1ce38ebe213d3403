package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Window is a concrete half-open reporting interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Named window shorthands accepted by the dashboards.
const (
	WindowThisMonth  = "this-month"
	WindowLastMonth  = "last-month"
	WindowLast30Days = "last-30-days"
	WindowThisYear   = "this-year"
)

// ResolveWindow turns a named shorthand into concrete UTC bounds relative
// to now. Unknown names are an error; callers with explicit dates never
// come through here.
func ResolveWindow(name string, now time.Time) (Window, error) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch name {
	case WindowThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: start, End: start.AddDate(0, 1, 0)}, nil
	case WindowLastMonth:
		end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: end.AddDate(0, -1, 0), End: end}, nil
	case WindowLast30Days:
		return Window{Start: today.AddDate(0, 0, -30), End: today.AddDate(0, 0, 1)}, nil
	case WindowThisYear:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: start, End: start.AddDate(1, 0, 0)}, nil
	}
	return Window{}, fmt.Errorf("unknown window shorthand %q", name)
}

// DealFigures is one in-scope deal flattened for aggregation: who sold it,
// under which team and work type, its contracted value and the verified
// amount received against it.
type DealFigures struct {
	DealID       string
	UserID       string
	UserName     string
	TeamID       string // empty when the salesperson is unscoped
	TeamName     string
	WorkTypeID   string
	WorkTypeName string
	DealValue    decimal.Decimal
	VerifiedPaid decimal.Decimal
}

// SalesTotals is the metric triple every aggregation level shares.
type SalesTotals struct {
	TotalSales decimal.Decimal `json:"totalSales"`
	TotalPaid  decimal.Decimal `json:"totalPaid"`
	TotalDues  decimal.Decimal `json:"totalDues"`
	DealCount  int             `json:"dealCount"`
}

// Add accumulates other into t.
func (t *SalesTotals) Add(other SalesTotals) {
	t.TotalSales = t.TotalSales.Add(other.TotalSales)
	t.TotalPaid = t.TotalPaid.Add(other.TotalPaid)
	t.TotalDues = t.TotalDues.Add(other.TotalDues)
	t.DealCount += other.DealCount
}

// WorkTypeAmount is a per-work-type slice of an employee's (or the whole
// window's) sales totals.
type WorkTypeAmount struct {
	WorkTypeID   string `json:"workTypeID"`
	WorkTypeName string `json:"workTypeName"`
	SalesTotals
}

// EmployeeSales is one employee's dashboard row with its work-type breakdown.
type EmployeeSales struct {
	UserID    string           `json:"userID"`
	Name      string           `json:"name"`
	TeamID    string           `json:"teamID,omitempty"`
	TeamName  string           `json:"teamName,omitempty"`
	Totals    SalesTotals      `json:"totals"`
	WorkTypes []WorkTypeAmount `json:"workTypes"`
}

// TeamSales sums the employee rows belonging to one team.
type TeamSales struct {
	TeamID    string          `json:"teamID"`
	TeamName  string          `json:"teamName"`
	Employees []EmployeeSales `json:"employees"`
	Totals    SalesTotals     `json:"totals"`
}

// SalesReport is the full dashboard payload: employee rows, the work-type
// totals across all employees, and the overall totals. Summation levels are
// derived from the employee rows only, so overall == sum(teams) ==
// sum(employees) for every metric.
type SalesReport struct {
	Employees      []EmployeeSales  `json:"employees"`
	WorkTypeTotals []WorkTypeAmount `json:"workTypeTotals"`
	OverallTotals  SalesTotals      `json:"overallTotals"`
}
