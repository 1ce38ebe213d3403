package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SaPok5/prs-sub001/internal/apperrors"
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	portsrepo "github.com/SaPok5/prs-sub001/internal/core/ports/repositories"
	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// paymentService is the payment status engine. Payments are created
// PENDING, decided exactly once (VERIFIED or DENIED), and may be
// corrected in any status without the correction touching the decision.
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepository
	dealRepo    portsrepo.DealRepository
}

// NewPaymentService creates the payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepository, dealRepo portsrepo.DealRepository) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo, dealRepo: dealRepo}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) CreatePayment(ctx context.Context, principal domain.Principal, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if err := s.Authorize(ctx, principal, domain.CapRecordPayments); err != nil {
		return nil, err
	}
	if req.ReceivedAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: received amount must be positive", apperrors.ErrValidation)
	}

	deal, err := s.dealRepo.FindDealByID(ctx, req.DealID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deal for payment: %w", err)
	}
	if deal.OrganizationID != principal.OrganizationID {
		return nil, fmt.Errorf("%w: deal belongs to another organization", apperrors.ErrForbidden)
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:      uuid.NewString(),
		DealID:         req.DealID,
		PaymentDate:    req.PaymentDate,
		ReceivedAmount: req.ReceivedAmount,
		Remarks:        req.Remarks,
		ReceiptImage:   req.ReceiptImage,
		Status:         domain.PaymentPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "failed to save payment", slog.String("deal_id", req.DealID))
		return nil, fmt.Errorf("failed to create payment in service: %w", err)
	}

	s.LogInfo(ctx, "payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("deal_id", payment.DealID))
	return &payment, nil
}

// VerifyPayment decides a PENDING payment as VERIFIED. The repository
// update is conditional on the status still being PENDING, so under
// concurrent deciders exactly one caller succeeds and the rest get
// apperrors.ErrConflict.
func (s *paymentService) VerifyPayment(ctx context.Context, principal domain.Principal, paymentID string) (*domain.Payment, error) {
	if err := s.Authorize(ctx, principal, domain.CapVerifyPayments); err != nil {
		return nil, err
	}
	return s.decide(ctx, principal, paymentID, domain.PaymentVerified, "")
}

// DenyPayment decides a PENDING payment as DENIED. Denial remarks are
// mandatory; the check happens before any state is touched.
func (s *paymentService) DenyPayment(ctx context.Context, principal domain.Principal, paymentID string, remarks string) (*domain.Payment, error) {
	if err := s.Authorize(ctx, principal, domain.CapVerifyPayments); err != nil {
		return nil, err
	}
	if strings.TrimSpace(remarks) == "" {
		return nil, fmt.Errorf("%w: denial requires remarks", apperrors.ErrValidation)
	}
	return s.decide(ctx, principal, paymentID, domain.PaymentDenied, remarks)
}

// findScopedPayment loads a payment and checks, through its owning deal,
// that it belongs to the principal's organization. Every read or write
// addressed by payment ID goes through here.
func (s *paymentService) findScopedPayment(ctx context.Context, principal domain.Principal, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	deal, err := s.dealRepo.FindDealByID(ctx, payment.DealID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deal for payment: %w", err)
	}
	if deal.OrganizationID != principal.OrganizationID {
		return nil, fmt.Errorf("%w: payment belongs to another organization", apperrors.ErrForbidden)
	}
	return payment, nil
}

func (s *paymentService) decide(ctx context.Context, principal domain.Principal, paymentID string, status domain.PaymentStatus, remarks string) (*domain.Payment, error) {
	if _, err := s.findScopedPayment(ctx, principal, paymentID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	payment, err := s.paymentRepo.DecidePayment(ctx, paymentID, status, principal.UserID, remarks, principal.UserID, now)
	if err != nil {
		s.LogError(ctx, err, "payment decision failed",
			slog.String("payment_id", paymentID),
			slog.String("status", string(status)))
		return nil, err
	}
	s.LogInfo(ctx, "payment decided",
		slog.String("payment_id", paymentID),
		slog.String("status", string(status)),
		slog.String("verifier_id", principal.UserID))
	return payment, nil
}

// EditPayment applies a correction patch. Edits are orthogonal to the
// decision workflow: they work in any status, never change the status,
// and flip the edited markers.
func (s *paymentService) EditPayment(ctx context.Context, principal domain.Principal, paymentID string, req dto.EditPaymentRequest) (*domain.Payment, error) {
	if err := s.Authorize(ctx, principal, domain.CapRecordPayments); err != nil {
		return nil, err
	}

	payment, err := s.findScopedPayment(ctx, principal, paymentID)
	if err != nil {
		return nil, err
	}

	if req.ReceivedAmount != nil {
		if req.ReceivedAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: received amount must be positive", apperrors.ErrValidation)
		}
		payment.ReceivedAmount = *req.ReceivedAmount
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = *req.PaymentDate
	}
	if req.Remarks != nil {
		payment.Remarks = *req.Remarks
	}
	if req.ReceiptImage != nil {
		payment.ReceiptImage = *req.ReceiptImage
	}

	now := time.Now().UTC()
	payment.IsEdited = true
	payment.EditedAt = &now
	payment.LastUpdatedAt = now
	payment.LastUpdatedBy = principal.UserID

	if err := s.paymentRepo.UpdatePaymentDetails(ctx, *payment); err != nil {
		s.LogError(ctx, err, "failed to update payment details", slog.String("payment_id", paymentID))
		return nil, fmt.Errorf("failed to edit payment in service: %w", err)
	}

	s.LogInfo(ctx, "payment edited",
		slog.String("payment_id", paymentID),
		slog.String("status", string(payment.Status)))
	return payment, nil
}

func (s *paymentService) GetPayment(ctx context.Context, principal domain.Principal, paymentID string) (*domain.Payment, error) {
	return s.findScopedPayment(ctx, principal, paymentID)
}

func (s *paymentService) ListPaymentsByStatus(ctx context.Context, principal domain.Principal, status domain.PaymentStatus, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	if !status.Valid() {
		return nil, nil, fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, status)
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	payments, next, err := s.paymentRepo.ListPaymentsByStatus(ctx, principal.OrganizationID, status, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list payments in service: %w", err)
	}
	return payments, next, nil
}

func (s *paymentService) ListPaymentsByDeal(ctx context.Context, principal domain.Principal, dealID string) ([]domain.Payment, error) {
	deal, err := s.dealRepo.FindDealByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.OrganizationID != principal.OrganizationID {
		return nil, fmt.Errorf("%w: deal belongs to another organization", apperrors.ErrForbidden)
	}
	payments, err := s.paymentRepo.ListPaymentsByDeal(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deal payments in service: %w", err)
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return payments, nil
}
