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

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(db *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

const clientColumns = `client_id, client_serial, full_name, email, contact, nationality, organization_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.ClientSerial,
		&m.FullName,
		&m.Email,
		&m.Contact,
		&m.Nationality,
		&m.OrganizationID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
        INSERT INTO clients (client_id, client_serial, full_name, email, contact, nationality, organization_id,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID,
		m.ClientSerial,
		m.FullName,
		m.Email,
		m.Contact,
		m.Nationality,
		m.OrganizationID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	m, err := scanClient(r.Pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	d := mapping.ToDomainClient(m)
	return &d, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.Client, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []any{organizationID}
	query := `SELECT ` + clientColumns + ` FROM clients WHERE organization_id = $1`

	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, createdAt, id)
		query += ` AND (created_at, client_id) < ($2, $3)`
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC, client_id DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var ms []models.Client
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed reading client rows: %w", err)
	}

	var next *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.ClientID)
		next = &token
	}

	return mapping.ToDomainClientSlice(ms), next, nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
        UPDATE clients
        SET full_name = $2,
            email = $3,
            contact = $4,
            nationality = $5,
            last_updated_at = $6,
            last_updated_by = $7
        WHERE client_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query,
		m.ClientID,
		m.FullName,
		m.Email,
		m.Contact,
		m.Nationality,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", m.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) FindLatestClientSerial(ctx context.Context, organizationID string) (int, bool, error) {
	var serial int
	err := r.Pool.QueryRow(ctx,
		`SELECT client_serial FROM clients WHERE organization_id = $1 ORDER BY client_serial DESC LIMIT 1;`,
		organizationID,
	).Scan(&serial)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to find latest client serial: %w", err)
	}
	return serial, true, nil
}
