package models

import "github.com/shopspring/decimal"

// WorkType mirrors the work_types table.
type WorkType struct {
	WorkTypeID     string `db:"work_type_id"`
	Name           string `db:"name"`
	OrganizationID string `db:"organization_id"`
	AuditFields
}

// SourceType mirrors the source_types table.
type SourceType struct {
	SourceTypeID   string `db:"source_type_id"`
	Name           string `db:"name"`
	OrganizationID string `db:"organization_id"`
	AuditFields
}

// Offer mirrors the offers table.
type Offer struct {
	OfferID         string          `db:"offer_id"`
	Name            string          `db:"name"`
	DiscountPercent decimal.Decimal `db:"discount_percent"`
	IsActive        bool            `db:"is_active"`
	OrganizationID  string          `db:"organization_id"`
	AuditFields
}
