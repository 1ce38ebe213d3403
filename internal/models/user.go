package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// User mirrors the users table. Roles is stored as a text[] column and
// EmployeeSerial is the numeric part of the org-scoped employee number.
type User struct {
	UserID            string          `db:"user_id"`
	EmployeeSerial    int             `db:"employee_serial"`
	FullName          string          `db:"full_name"`
	Email             string          `db:"email"`
	PasswordHash      string          `db:"password_hash"`
	TeamID            sql.NullString  `db:"team_id"`
	Roles             []string        `db:"roles"`
	OrganizationID    string          `db:"organization_id"`
	CurrencyCode      string          `db:"currency_code"`
	CommissionPercent decimal.Decimal `db:"commission_percent"`
	Bonus             decimal.Decimal `db:"bonus"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
