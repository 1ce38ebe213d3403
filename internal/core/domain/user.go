package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is an employee of an organization. EmployeeNumber is the
// org-scoped serial (e.g. "EMP-0003"). CommissionPercent and Bonus
// feed the commission calculator for verified sales.
type User struct {
	UserID            string          `json:"userID"`
	EmployeeNumber    string          `json:"employeeNumber"`
	FullName          string          `json:"fullName"`
	Email             string          `json:"email"`
	Assignment        Assignment      `json:"-"`
	Roles             []RoleName      `json:"roles"`
	OrganizationID    string          `json:"organizationID"`
	CurrencyCode      string          `json:"currencyCode"` // currency the user's sales are recorded in
	CommissionPercent decimal.Decimal `json:"commissionPercent"`
	Bonus             decimal.Decimal `json:"bonus"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// HasRole reports whether the user carries the given role.
func (u User) HasRole(role RoleName) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Can reports whether any of the user's roles grants the capability.
func (u User) Can(cap Capability) bool {
	return HasCapability(u.Roles, cap)
}
