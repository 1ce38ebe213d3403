package repositories

import (
	"context"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
)

// ReportingRepository reads the flattened rows the aggregator and the
// commission calculator work from. All grouping above the per-deal /
// per-user level happens in the service layer so that each summation
// level is derived from the same rows.
type ReportingRepository interface {
	// GetDealFigures returns one row per in-scope deal: contracted value
	// plus the verified amount received, with owner/team/work-type labels.
	// teamID and userID narrow the scope when non-empty.
	GetDealFigures(ctx context.Context, organizationID string, window domain.Window, teamID, userID string) ([]domain.DealFigures, error)

	// GetUserSalesRecords returns each employee's verified sales inside the
	// window together with their commission percent, bonus and currency.
	// Employees without verified sales in the window are included with zero
	// sales so their bonus still pays out.
	GetUserSalesRecords(ctx context.Context, organizationID string, window domain.Window) ([]domain.UserSalesRecord, error)
}
