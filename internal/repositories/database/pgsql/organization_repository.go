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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrganizationRepository struct {
	BaseRepository
}

func newPgxOrganizationRepository(db *pgxpool.Pool) portsrepo.OrganizationRepository {
	return &PgxOrganizationRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.OrganizationRepository = (*PgxOrganizationRepository)(nil)

// SaveOrganizationWithAdmin inserts the organization and its first admin
// atomically so a half-registered tenant can never exist.
func (r *PgxOrganizationRepository) SaveOrganizationWithAdmin(ctx context.Context, org domain.Organization, admin domain.User, adminPasswordHash string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	mOrg := mapping.ToModelOrganization(org)
	_, err = tx.Exec(ctx, `
        INSERT INTO organizations (organization_id, name, email, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		mOrg.OrganizationID,
		mOrg.Name,
		mOrg.Email,
		mOrg.CreatedAt,
		mOrg.CreatedBy,
		mOrg.LastUpdatedAt,
		mOrg.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save organization: %w", err)
	}

	mAdmin := mapping.ToModelUser(admin, adminPasswordHash)
	_, err = tx.Exec(ctx, `
        INSERT INTO users (user_id, employee_serial, full_name, email, password_hash, team_id, roles,
            organization_id, currency_code, commission_percent, bonus,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`,
		mAdmin.UserID,
		mAdmin.EmployeeSerial,
		mAdmin.FullName,
		mAdmin.Email,
		mAdmin.PasswordHash,
		mAdmin.TeamID,
		mAdmin.Roles,
		mAdmin.OrganizationID,
		mAdmin.CurrencyCode,
		mAdmin.CommissionPercent,
		mAdmin.Bonus,
		mAdmin.CreatedAt,
		mAdmin.CreatedBy,
		mAdmin.LastUpdatedAt,
		mAdmin.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save organization admin: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	var m models.Organization
	err := r.Pool.QueryRow(ctx, `
        SELECT organization_id, name, email, created_at, created_by, last_updated_at, last_updated_by
        FROM organizations WHERE organization_id = $1;`,
		organizationID,
	).Scan(
		&m.OrganizationID,
		&m.Name,
		&m.Email,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization by ID %s: %w", organizationID, err)
	}
	d := mapping.ToDomainOrganization(m)
	return &d, nil
}

func (r *PgxOrganizationRepository) FindOrganizationByEmail(ctx context.Context, email string) (*domain.Organization, error) {
	var m models.Organization
	err := r.Pool.QueryRow(ctx, `
        SELECT organization_id, name, email, created_at, created_by, last_updated_at, last_updated_by
        FROM organizations WHERE email = $1;`,
		email,
	).Scan(
		&m.OrganizationID,
		&m.Name,
		&m.Email,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization by email: %w", err)
	}
	d := mapping.ToDomainOrganization(m)
	return &d, nil
}

type PgxTeamRepository struct {
	BaseRepository
}

func newPgxTeamRepository(db *pgxpool.Pool) portsrepo.TeamRepository {
	return &PgxTeamRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TeamRepository = (*PgxTeamRepository)(nil)

func (r *PgxTeamRepository) SaveTeam(ctx context.Context, team domain.Team) error {
	m := mapping.ToModelTeam(team)
	_, err := r.Pool.Exec(ctx, `
        INSERT INTO teams (team_id, name, organization_id, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		m.TeamID,
		m.Name,
		m.OrganizationID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}
	return nil
}

func (r *PgxTeamRepository) FindTeamByID(ctx context.Context, teamID string) (*domain.Team, error) {
	var m models.Team
	err := r.Pool.QueryRow(ctx, `
        SELECT team_id, name, organization_id, created_at, created_by, last_updated_at, last_updated_by
        FROM teams WHERE team_id = $1;`,
		teamID,
	).Scan(
		&m.TeamID,
		&m.Name,
		&m.OrganizationID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find team by ID %s: %w", teamID, err)
	}
	d := mapping.ToDomainTeam(m)
	return &d, nil
}

func (r *PgxTeamRepository) ListTeams(ctx context.Context, organizationID string) ([]domain.Team, error) {
	rows, err := r.Pool.Query(ctx, `
        SELECT team_id, name, organization_id, created_at, created_by, last_updated_at, last_updated_by
        FROM teams WHERE organization_id = $1 ORDER BY name;`,
		organizationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var ms []models.Team
	for rows.Next() {
		var m models.Team
		if err := rows.Scan(
			&m.TeamID,
			&m.Name,
			&m.OrganizationID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading team rows: %w", err)
	}
	return mapping.ToDomainTeamSlice(ms), nil
}
