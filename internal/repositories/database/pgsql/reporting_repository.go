package pgsql

import (
	"context"
	"fmt"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
	portsrepo "github.com/SaPok5/prs-sub001/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetDealFigures flattens each in-scope deal to its contracted value plus
// the verified amount received. Only VERIFIED payments count toward the
// paid figure; window membership is decided by the deal date.
func (r *PgxReportingRepository) GetDealFigures(ctx context.Context, organizationID string, window domain.Window, teamID, userID string) ([]domain.DealFigures, error) {
	args := []any{organizationID, window.Start, window.End}
	query := `
        SELECT d.deal_id,
            d.user_id,
            u.full_name,
            COALESCE(u.team_id::text, ''),
            COALESCE(t.name, ''),
            d.work_type_id,
            w.name,
            d.deal_value,
            COALESCE(SUM(p.received_amount) FILTER (WHERE p.payment_status = 'VERIFIED'), 0)
        FROM deals d
        JOIN users u ON u.user_id = d.user_id
        LEFT JOIN teams t ON t.team_id = u.team_id
        JOIN work_types w ON w.work_type_id = d.work_type_id
        LEFT JOIN payments p ON p.deal_id = d.deal_id
        WHERE d.organization_id = $1
          AND d.deal_date >= $2
          AND d.deal_date < $3`

	if teamID != "" {
		args = append(args, teamID)
		query += fmt.Sprintf(` AND u.team_id = $%d`, len(args))
	}
	if userID != "" {
		args = append(args, userID)
		query += fmt.Sprintf(` AND d.user_id = $%d`, len(args))
	}

	query += `
        GROUP BY d.deal_id, d.user_id, u.full_name, u.team_id, t.name, d.work_type_id, w.name, d.deal_value
        ORDER BY d.user_id, d.deal_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query deal figures: %w", err)
	}
	defer rows.Close()

	var figures []domain.DealFigures
	for rows.Next() {
		var fig domain.DealFigures
		if err := rows.Scan(
			&fig.DealID,
			&fig.UserID,
			&fig.UserName,
			&fig.TeamID,
			&fig.TeamName,
			&fig.WorkTypeID,
			&fig.WorkTypeName,
			&fig.DealValue,
			&fig.VerifiedPaid,
		); err != nil {
			return nil, fmt.Errorf("failed to scan deal figures row: %w", err)
		}
		figures = append(figures, fig)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading deal figures rows: %w", err)
	}
	return figures, nil
}

// GetUserSalesRecords sums each employee's verified payments inside the
// window. The LEFT JOIN keeps employees without verified sales in the
// result with a zero total so their bonus still pays out.
func (r *PgxReportingRepository) GetUserSalesRecords(ctx context.Context, organizationID string, window domain.Window) ([]domain.UserSalesRecord, error) {
	query := `
        SELECT u.user_id,
            u.full_name,
            u.currency_code,
            COALESCE(SUM(p.received_amount) FILTER (WHERE p.payment_status = 'VERIFIED'
                AND p.payment_date >= $2 AND p.payment_date < $3), 0),
            u.commission_percent,
            u.bonus
        FROM users u
        LEFT JOIN deals d ON d.user_id = u.user_id
        LEFT JOIN payments p ON p.deal_id = d.deal_id
        WHERE u.organization_id = $1 AND u.deleted_at IS NULL
        GROUP BY u.user_id, u.full_name, u.currency_code, u.commission_percent, u.bonus
        ORDER BY u.user_id;`

	rows, err := r.Pool.Query(ctx, query, organizationID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query user sales records: %w", err)
	}
	defer rows.Close()

	var records []domain.UserSalesRecord
	for rows.Next() {
		var rec domain.UserSalesRecord
		if err := rows.Scan(
			&rec.UserID,
			&rec.FullName,
			&rec.Currency,
			&rec.TotalSales,
			&rec.CommissionPercent,
			&rec.Bonus,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user sales row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading user sales rows: %w", err)
	}
	return records, nil
}
