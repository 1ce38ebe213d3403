package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates where a payment sits in the verification workflow.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentVerified PaymentStatus = "VERIFIED"
	PaymentDenied   PaymentStatus = "DENIED"
)

// Valid reports whether s is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentVerified, PaymentDenied:
		return true
	}
	return false
}

// Decided reports whether the verification workflow has concluded for this status.
// VERIFIED and DENIED are both terminal; later edits never reopen the workflow.
func (s PaymentStatus) Decided() bool {
	return s == PaymentVerified || s == PaymentDenied
}

// Payment is a single recorded receipt against a deal.
// Status moves PENDING -> VERIFIED or PENDING -> DENIED exactly once;
// amount/date/remarks corrections after that only flip IsEdited.
type Payment struct {
	PaymentID      string          `json:"paymentID"`
	DealID         string          `json:"dealID"`
	PaymentDate    time.Time       `json:"paymentDate"`
	ReceivedAmount decimal.Decimal `json:"receivedAmount"`
	Remarks        string          `json:"remarks"`
	ReceiptImage   string          `json:"receiptImage,omitempty"` // stored reference, upload handled elsewhere
	Status         PaymentStatus   `json:"paymentStatus"`
	DenialRemarks  string          `json:"denialRemarks,omitempty"` // required iff Status == DENIED
	VerifierID     *string         `json:"verifierID,omitempty"`    // set by the deciding verifier
	IsEdited       bool            `json:"isEdited"`
	EditedAt       *time.Time      `json:"editedAt,omitempty"`
	AuditFields
}
