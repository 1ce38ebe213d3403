package dto

import (
	"time"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest records a new receipt against a deal. Payments are
// born PENDING; only the verification mutation moves them on.
type CreatePaymentRequest struct {
	DealID         string          `json:"dealID" binding:"required"`
	PaymentDate    time.Time       `json:"paymentDate" binding:"required"`
	ReceivedAmount decimal.Decimal `json:"receivedAmount" binding:"required"`
	Remarks        string          `json:"remarks"`
	ReceiptImage   string          `json:"receiptImage"`
}

// VerifyPaymentRequest decides a pending payment. Remarks are required by
// the service when Status is DENIED.
type VerifyPaymentRequest struct {
	Status  domain.PaymentStatus `json:"status" binding:"required,oneof=VERIFIED DENIED"`
	Remarks string               `json:"remarks"`
}

// EditPaymentRequest corrects a payment's details. Pointers distinguish
// omitted fields from zero values. Status is never editable here.
type EditPaymentRequest struct {
	PaymentDate    *time.Time       `json:"paymentDate"`
	ReceivedAmount *decimal.Decimal `json:"receivedAmount"`
	Remarks        *string          `json:"remarks"`
	ReceiptImage   *string          `json:"receiptImage"`
}

// ListPaymentsParams filters the payment queue.
type ListPaymentsParams struct {
	Status    string  `form:"status"`
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// PaymentResponse is the API shape of a payment.
type PaymentResponse struct {
	PaymentID      string          `json:"paymentID"`
	DealID         string          `json:"dealID"`
	PaymentDate    time.Time       `json:"paymentDate"`
	ReceivedAmount decimal.Decimal `json:"receivedAmount"`
	Remarks        string          `json:"remarks,omitempty"`
	ReceiptImage   string          `json:"receiptImage,omitempty"`
	Status         string          `json:"paymentStatus"`
	DenialRemarks  string          `json:"denialRemarks,omitempty"`
	VerifierID     *string         `json:"verifierID,omitempty"`
	IsEdited       bool            `json:"isEdited"`
	EditedAt       *time.Time      `json:"editedAt,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToPaymentResponse converts a domain payment to its API shape.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:      p.PaymentID,
		DealID:         p.DealID,
		PaymentDate:    p.PaymentDate,
		ReceivedAmount: p.ReceivedAmount,
		Remarks:        p.Remarks,
		ReceiptImage:   p.ReceiptImage,
		Status:         string(p.Status),
		DenialRemarks:  p.DenialRemarks,
		VerifierID:     p.VerifierID,
		IsEdited:       p.IsEdited,
		EditedAt:       p.EditedAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.LastUpdatedAt,
	}
}

// ToPaymentResponses converts a slice of domain payments.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i := range payments {
		out[i] = ToPaymentResponse(&payments[i])
	}
	return out
}

// ListPaymentsResponse wraps a page of payments.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}
