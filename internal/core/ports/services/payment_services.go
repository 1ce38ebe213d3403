package services

import (
	"context"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
	"github.com/SaPok5/prs-sub001/internal/dto"
)

// PaymentSvcFacade is the payment status engine: record, decide, correct.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, principal domain.Principal, req dto.CreatePaymentRequest) (*domain.Payment, error)

	// VerifyPayment moves a PENDING payment to VERIFIED. Deciding an
	// already-decided payment fails with apperrors.ErrConflict.
	VerifyPayment(ctx context.Context, principal domain.Principal, paymentID string) (*domain.Payment, error)

	// DenyPayment moves a PENDING payment to DENIED. Empty remarks fail
	// with apperrors.ErrValidation before anything is touched.
	DenyPayment(ctx context.Context, principal domain.Principal, paymentID string, remarks string) (*domain.Payment, error)

	// EditPayment corrects details in any status and marks the payment
	// edited; it never changes the status.
	EditPayment(ctx context.Context, principal domain.Principal, paymentID string, req dto.EditPaymentRequest) (*domain.Payment, error)

	GetPayment(ctx context.Context, principal domain.Principal, paymentID string) (*domain.Payment, error)
	ListPaymentsByStatus(ctx context.Context, principal domain.Principal, status domain.PaymentStatus, limit int, nextToken *string) ([]domain.Payment, *string, error)
	ListPaymentsByDeal(ctx context.Context, principal domain.Principal, dealID string) ([]domain.Payment, error)
}
