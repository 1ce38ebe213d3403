package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SaPok5/prs-sub001/internal/apperrors"
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	portsrepo "github.com/SaPok5/prs-sub001/internal/core/ports/repositories"
	"github.com/SaPok5/prs-sub001/internal/models"
	"github.com/SaPok5/prs-sub001/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkTypeRepository struct {
	BaseRepository
}

func newPgxWorkTypeRepository(db *pgxpool.Pool) portsrepo.WorkTypeRepository {
	return &PgxWorkTypeRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.WorkTypeRepository = (*PgxWorkTypeRepository)(nil)

func (r *PgxWorkTypeRepository) SaveWorkType(ctx context.Context, workType domain.WorkType) error {
	m := mapping.ToModelWorkType(workType)
	_, err := r.Pool.Exec(ctx, `
        INSERT INTO work_types (work_type_id, name, organization_id, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		m.WorkTypeID, m.Name, m.OrganizationID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save work type: %w", err)
	}
	return nil
}

func (r *PgxWorkTypeRepository) FindWorkTypeByID(ctx context.Context, workTypeID string) (*domain.WorkType, error) {
	var m models.WorkType
	err := r.Pool.QueryRow(ctx, `
        SELECT work_type_id, name, organization_id, created_at, created_by, last_updated_at, last_updated_by
        FROM work_types WHERE work_type_id = $1;`,
		workTypeID,
	).Scan(&m.WorkTypeID, &m.Name, &m.OrganizationID, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find work type by ID %s: %w", workTypeID, err)
	}
	d := mapping.ToDomainWorkType(m)
	return &d, nil
}

func (r *PgxWorkTypeRepository) ListWorkTypes(ctx context.Context, organizationID string) ([]domain.WorkType, error) {
	rows, err := r.Pool.Query(ctx, `
        SELECT work_type_id, name, organization_id, created_at, created_by, last_updated_at, last_updated_by
        FROM work_types WHERE organization_id = $1 ORDER BY name;`,
		organizationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list work types: %w", err)
	}
	defer rows.Close()

	var ms []models.WorkType
	for rows.Next() {
		var m models.WorkType
		if err := rows.Scan(&m.WorkTypeID, &m.Name, &m.OrganizationID, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan work type row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading work type rows: %w", err)
	}
	return mapping.ToDomainWorkTypeSlice(ms), nil
}

func (r *PgxWorkTypeRepository) SaveSourceType(ctx context.Context, sourceType domain.SourceType) error {
	m := mapping.ToModelSourceType(sourceType)
	_, err := r.Pool.Exec(ctx, `
        INSERT INTO source_types (source_type_id, name, organization_id, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		m.SourceTypeID, m.Name, m.OrganizationID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save source type: %w", err)
	}
	return nil
}

func (r *PgxWorkTypeRepository) ListSourceTypes(ctx context.Context, organizationID string) ([]domain.SourceType, error) {
	rows, err := r.Pool.Query(ctx, `
        SELECT source_type_id, name, organization_id, created_at, created_by, last_updated_at, last_updated_by
        FROM source_types WHERE organization_id = $1 ORDER BY name;`,
		organizationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list source types: %w", err)
	}
	defer rows.Close()

	var ms []models.SourceType
	for rows.Next() {
		var m models.SourceType
		if err := rows.Scan(&m.SourceTypeID, &m.Name, &m.OrganizationID, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan source type row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading source type rows: %w", err)
	}
	return mapping.ToDomainSourceTypeSlice(ms), nil
}

type PgxOfferRepository struct {
	BaseRepository
}

func newPgxOfferRepository(db *pgxpool.Pool) portsrepo.OfferRepository {
	return &PgxOfferRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.OfferRepository = (*PgxOfferRepository)(nil)

func (r *PgxOfferRepository) SaveOffer(ctx context.Context, offer domain.Offer) error {
	m := mapping.ToModelOffer(offer)
	_, err := r.Pool.Exec(ctx, `
        INSERT INTO offers (offer_id, name, discount_percent, is_active, organization_id,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.OfferID, m.Name, m.DiscountPercent, m.IsActive, m.OrganizationID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save offer: %w", err)
	}
	return nil
}

func (r *PgxOfferRepository) FindOfferByID(ctx context.Context, offerID string) (*domain.Offer, error) {
	var m models.Offer
	err := r.Pool.QueryRow(ctx, `
        SELECT offer_id, name, discount_percent, is_active, organization_id,
            created_at, created_by, last_updated_at, last_updated_by
        FROM offers WHERE offer_id = $1;`,
		offerID,
	).Scan(&m.OfferID, &m.Name, &m.DiscountPercent, &m.IsActive, &m.OrganizationID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find offer by ID %s: %w", offerID, err)
	}
	d := mapping.ToDomainOffer(m)
	return &d, nil
}

func (r *PgxOfferRepository) ListOffers(ctx context.Context, organizationID string) ([]domain.Offer, error) {
	rows, err := r.Pool.Query(ctx, `
        SELECT offer_id, name, discount_percent, is_active, organization_id,
            created_at, created_by, last_updated_at, last_updated_by
        FROM offers WHERE organization_id = $1 ORDER BY name;`,
		organizationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	defer rows.Close()

	var ms []models.Offer
	for rows.Next() {
		var m models.Offer
		if err := rows.Scan(&m.OfferID, &m.Name, &m.DiscountPercent, &m.IsActive, &m.OrganizationID,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan offer row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading offer rows: %w", err)
	}
	return mapping.ToDomainOfferSlice(ms), nil
}

func (r *PgxOfferRepository) SetOfferActive(ctx context.Context, offerID string, active bool, updatedBy string) error {
	tag, err := r.Pool.Exec(ctx, `
        UPDATE offers
        SET is_active = $2, last_updated_at = $3, last_updated_by = $4
        WHERE offer_id = $1;`,
		offerID, active, time.Now().UTC(), updatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to toggle offer %s: %w", offerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
