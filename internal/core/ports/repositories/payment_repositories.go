package repositories

import (
	"context"
	"time"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
)

// PaymentRepository persists payments and performs the status transition.
type PaymentRepository interface {
	// SavePayment inserts a new payment (always PENDING).
	SavePayment(ctx context.Context, payment domain.Payment) error

	// FindPaymentByID returns apperrors.ErrNotFound when missing.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// DecidePayment atomically moves a PENDING payment to VERIFIED or DENIED.
	// The update is conditional on the current status still being PENDING;
	// if it is not, apperrors.ErrConflict is returned (apperrors.ErrNotFound
	// when the payment does not exist at all). Under concurrent deciders
	// exactly one call can succeed.
	DecidePayment(ctx context.Context, paymentID string, status domain.PaymentStatus, verifierID string, denialRemarks string, decidedBy string, decidedAt time.Time) (*domain.Payment, error)

	// UpdatePaymentDetails writes an edit patch (date/amount/remarks/receipt
	// plus the isEdited markers). It never changes payment_status.
	UpdatePaymentDetails(ctx context.Context, payment domain.Payment) error

	// ListPaymentsByStatus pages an organization's payments in one status,
	// newest first.
	ListPaymentsByStatus(ctx context.Context, organizationID string, status domain.PaymentStatus, limit int, nextToken *string) ([]domain.Payment, *string, error)

	// ListPaymentsByDeal returns every payment recorded against a deal.
	ListPaymentsByDeal(ctx context.Context, dealID string) ([]domain.Payment, error)
}
