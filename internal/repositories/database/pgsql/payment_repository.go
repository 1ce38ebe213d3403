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
	"github.com/SaPok5/prs-sub001/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, deal_id, payment_date, received_amount, remarks, receipt_image,
	payment_status, denial_remarks, verifier_id, is_edited, edited_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.DealID,
		&m.PaymentDate,
		&m.ReceivedAmount,
		&m.Remarks,
		&m.ReceiptImage,
		&m.PaymentStatus,
		&m.DenialRemarks,
		&m.VerifierID,
		&m.IsEdited,
		&m.EditedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
        INSERT INTO payments (payment_id, deal_id, payment_date, received_amount, remarks, receipt_image,
            payment_status, is_edited, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID,
		m.DealID,
		m.PaymentDate,
		m.ReceivedAmount,
		m.Remarks,
		m.ReceiptImage,
		m.PaymentStatus,
		m.IsEdited,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}
	d := mapping.ToDomainPayment(m)
	return &d, nil
}

// DecidePayment flips a PENDING payment to its terminal status. The WHERE
// clause is the concurrency control: it only matches while the payment is
// still PENDING, so of any number of concurrent deciders exactly one
// update succeeds and the rest fall through to the conflict check below.
func (r *PgxPaymentRepository) DecidePayment(ctx context.Context, paymentID string, status domain.PaymentStatus, verifierID string, denialRemarks string, decidedBy string, decidedAt time.Time) (*domain.Payment, error) {
	query := `
        UPDATE payments
        SET payment_status = $2,
            verifier_id = $3,
            denial_remarks = NULLIF($4, ''),
            last_updated_at = $5,
            last_updated_by = $6
        WHERE payment_id = $1 AND payment_status = 'PENDING'
        RETURNING ` + paymentColumns + `;`

	m, err := scanPayment(r.Pool.QueryRow(ctx, query,
		paymentID,
		string(status),
		verifierID,
		denialRemarks,
		decidedAt,
		decidedBy,
	))
	if err == nil {
		d := mapping.ToDomainPayment(m)
		return &d, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to decide payment %s: %w", paymentID, err)
	}

	// No row matched: either the payment is gone or someone else decided
	// it first.
	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM payments WHERE payment_id = $1)`, paymentID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check payment %s: %w", paymentID, err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	return nil, fmt.Errorf("%w: payment %s is no longer pending", apperrors.ErrConflict, paymentID)
}

// UpdatePaymentDetails writes an edit patch. payment_status is deliberately
// absent from the SET list.
func (r *PgxPaymentRepository) UpdatePaymentDetails(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
        UPDATE payments
        SET payment_date = $2,
            received_amount = $3,
            remarks = $4,
            receipt_image = $5,
            is_edited = $6,
            edited_at = $7,
            last_updated_at = $8,
            last_updated_by = $9
        WHERE payment_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query,
		m.PaymentID,
		m.PaymentDate,
		m.ReceivedAmount,
		m.Remarks,
		m.ReceiptImage,
		m.IsEdited,
		m.EditedAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", m.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPaymentRepository) ListPaymentsByStatus(ctx context.Context, organizationID string, status domain.PaymentStatus, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []any{organizationID, string(status)}
	query := `
        SELECT p.payment_id, p.deal_id, p.payment_date, p.received_amount, p.remarks, p.receipt_image,
            p.payment_status, p.denial_remarks, p.verifier_id, p.is_edited, p.edited_at,
            p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
        FROM payments p
        JOIN deals d ON d.deal_id = p.deal_id
        WHERE d.organization_id = $1 AND p.payment_status = $2`

	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (p.created_at, p.payment_id) < ($3, $4)`
		args = append(args, createdAt, id)
	}

	query += fmt.Sprintf(` ORDER BY p.created_at DESC, p.payment_id DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var ms []models.Payment
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed reading payment rows: %w", err)
	}

	var next *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.PaymentID)
		next = &token
	}

	return mapping.ToDomainPaymentSlice(ms), next, nil
}

func (r *PgxPaymentRepository) ListPaymentsByDeal(ctx context.Context, dealID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE deal_id = $1 ORDER BY payment_date, payment_id;`
	rows, err := r.Pool.Query(ctx, query, dealID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deal payments: %w", err)
	}
	defer rows.Close()

	var ms []models.Payment
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading payment rows: %w", err)
	}
	return mapping.ToDomainPaymentSlice(ms), nil
}
