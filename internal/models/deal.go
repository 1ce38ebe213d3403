package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Deal mirrors the deals table. DealSerial is the numeric part of the
// org-scoped deal number.
type Deal struct {
	DealID         string          `db:"deal_id"`
	DealSerial     int             `db:"deal_serial"`
	DealName       string          `db:"deal_name"`
	ClientID       string          `db:"client_id"`
	WorkTypeID     string          `db:"work_type_id"`
	SourceTypeID   string          `db:"source_type_id"`
	DealValue      decimal.Decimal `db:"deal_value"`
	DealDate       time.Time       `db:"deal_date"`
	DueDate        time.Time       `db:"due_date"`
	Remarks        sql.NullString  `db:"remarks"`
	UserID         string          `db:"user_id"`
	OrganizationID string          `db:"organization_id"`
	AuditFields
}
