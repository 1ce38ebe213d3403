package mapping

import (
	"database/sql"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
	"github.com/SaPok5/prs-sub001/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	m := models.Payment{
		PaymentID:      d.PaymentID,
		DealID:         d.DealID,
		PaymentDate:    d.PaymentDate,
		ReceivedAmount: d.ReceivedAmount,
		Remarks:        d.Remarks,
		PaymentStatus:  string(d.Status),
		IsEdited:       d.IsEdited,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.ReceiptImage != "" {
		m.ReceiptImage = sql.NullString{String: d.ReceiptImage, Valid: true}
	}
	if d.DenialRemarks != "" {
		m.DenialRemarks = sql.NullString{String: d.DenialRemarks, Valid: true}
	}
	if d.VerifierID != nil {
		m.VerifierID = sql.NullString{String: *d.VerifierID, Valid: true}
	}
	if d.EditedAt != nil {
		m.EditedAt = sql.NullTime{Time: *d.EditedAt, Valid: true}
	}
	return m
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	d := domain.Payment{
		PaymentID:      m.PaymentID,
		DealID:         m.DealID,
		PaymentDate:    m.PaymentDate,
		ReceivedAmount: m.ReceivedAmount,
		Remarks:        m.Remarks,
		ReceiptImage:   m.ReceiptImage.String,
		Status:         domain.PaymentStatus(m.PaymentStatus),
		DenialRemarks:  m.DenialRemarks.String,
		IsEdited:       m.IsEdited,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if m.VerifierID.Valid {
		verifierID := m.VerifierID.String
		d.VerifierID = &verifierID
	}
	if m.EditedAt.Valid {
		editedAt := m.EditedAt.Time
		d.EditedAt = &editedAt
	}
	return d
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
