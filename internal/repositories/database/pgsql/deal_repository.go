package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SaPok5/prs-sub001/internal/apperrors"
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	portsrepo "github.com/SaPok5/prs-sub001/internal/core/ports/repositories"
	"github.com/SaPok5/prs-sub001/internal/models"
	"github.com/SaPok5/prs-sub001/internal/utils/mapping"
	"github.com/SaPok5/prs-sub001/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDealRepository struct {
	BaseRepository
}

func newPgxDealRepository(db *pgxpool.Pool) portsrepo.DealRepository {
	return &PgxDealRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.DealRepository = (*PgxDealRepository)(nil)

const dealColumns = `deal_id, deal_serial, deal_name, client_id, work_type_id, source_type_id,
	deal_value, deal_date, due_date, remarks, user_id, organization_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanDeal(row pgx.Row) (models.Deal, error) {
	var m models.Deal
	err := row.Scan(
		&m.DealID,
		&m.DealSerial,
		&m.DealName,
		&m.ClientID,
		&m.WorkTypeID,
		&m.SourceTypeID,
		&m.DealValue,
		&m.DealDate,
		&m.DueDate,
		&m.Remarks,
		&m.UserID,
		&m.OrganizationID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxDealRepository) SaveDeal(ctx context.Context, deal domain.Deal) error {
	m := mapping.ToModelDeal(deal)
	query := `
        INSERT INTO deals (deal_id, deal_serial, deal_name, client_id, work_type_id, source_type_id,
            deal_value, deal_date, due_date, remarks, user_id, organization_id,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.DealID,
		m.DealSerial,
		m.DealName,
		m.ClientID,
		m.WorkTypeID,
		m.SourceTypeID,
		m.DealValue,
		m.DealDate,
		m.DueDate,
		m.Remarks,
		m.UserID,
		m.OrganizationID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save deal: %w", err)
	}
	return nil
}

func (r *PgxDealRepository) FindDealByID(ctx context.Context, dealID string) (*domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE deal_id = $1;`
	m, err := scanDeal(r.Pool.QueryRow(ctx, query, dealID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find deal by ID %s: %w", dealID, err)
	}
	d := mapping.ToDomainDeal(m)
	return &d, nil
}

func (r *PgxDealRepository) ListDeals(ctx context.Context, organizationID string, filter portsrepo.DealListFilter, limit int, nextToken *string) ([]domain.Deal, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []any{organizationID}
	query := `SELECT ` + dealColumns + ` FROM deals WHERE organization_id = $1`

	if filter.ClientID != "" {
		args = append(args, filter.ClientID)
		query += fmt.Sprintf(` AND client_id = $%d`, len(args))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(` AND user_id = $%d`, len(args))
	}
	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, createdAt, id)
		query += fmt.Sprintf(` AND (created_at, deal_id) < ($%d, $%d)`, len(args)-1, len(args))
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC, deal_id DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list deals: %w", err)
	}
	defer rows.Close()

	var ms []models.Deal
	for rows.Next() {
		m, err := scanDeal(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan deal row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed reading deal rows: %w", err)
	}

	var next *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.DealID)
		next = &token
	}

	return mapping.ToDomainDealSlice(ms), next, nil
}

func (r *PgxDealRepository) UpdateDeal(ctx context.Context, deal domain.Deal) error {
	m := mapping.ToModelDeal(deal)
	query := `
        UPDATE deals
        SET deal_name = $2,
            deal_value = $3,
            deal_date = $4,
            due_date = $5,
            remarks = $6,
            last_updated_at = $7,
            last_updated_by = $8
        WHERE deal_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query,
		m.DealID,
		m.DealName,
		m.DealValue,
		m.DealDate,
		m.DueDate,
		m.Remarks,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update deal %s: %w", m.DealID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDealRepository) DeleteDeal(ctx context.Context, dealID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM deals WHERE deal_id = $1;`, dealID)
	if err != nil {
		return fmt.Errorf("failed to delete deal %s: %w", dealID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindLatestDealSerial reports the highest serial in use. The bool result
// tells "no deals yet" apart from a failed read so serial allocation never
// silently restarts at 1 after an error.
func (r *PgxDealRepository) FindLatestDealSerial(ctx context.Context, organizationID string) (int, bool, error) {
	var serial int
	err := r.Pool.QueryRow(ctx,
		`SELECT deal_serial FROM deals WHERE organization_id = $1 ORDER BY deal_serial DESC LIMIT 1;`,
		organizationID,
	).Scan(&serial)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to find latest deal serial: %w", err)
	}
	return serial, true, nil
}
