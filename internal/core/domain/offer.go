package domain

import "github.com/shopspring/decimal"

// Offer is a discount promotion an organization can attach to new deals.
type Offer struct {
	OfferID         string          `json:"offerID"`
	Name            string          `json:"name"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	IsActive        bool            `json:"isActive"`
	OrganizationID  string          `json:"organizationID"`
	AuditFields
}
