package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Payment mirrors the payments table.
type Payment struct {
	PaymentID      string          `db:"payment_id"`
	DealID         string          `db:"deal_id"`
	PaymentDate    time.Time       `db:"payment_date"`
	ReceivedAmount decimal.Decimal `db:"received_amount"`
	Remarks        string          `db:"remarks"`
	ReceiptImage   sql.NullString  `db:"receipt_image"`
	PaymentStatus  string          `db:"payment_status"`
	DenialRemarks  sql.NullString  `db:"denial_remarks"`
	VerifierID     sql.NullString  `db:"verifier_id"`
	IsEdited       bool            `db:"is_edited"`
	EditedAt       sql.NullTime    `db:"edited_at"`
	AuditFields
}
