package dto

import (
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOfferRequest creates a discount promotion.
type CreateOfferRequest struct {
	Name            string          `json:"name" binding:"required"`
	DiscountPercent decimal.Decimal `json:"discountPercent" binding:"required"`
}

// OfferResponse is the API shape of an offer.
type OfferResponse struct {
	OfferID         string          `json:"offerID"`
	Name            string          `json:"name"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	IsActive        bool            `json:"isActive"`
}

// ToOfferResponse converts a domain offer.
func ToOfferResponse(o *domain.Offer) OfferResponse {
	return OfferResponse{
		OfferID:         o.OfferID,
		Name:            o.Name,
		DiscountPercent: o.DiscountPercent,
		IsActive:        o.IsActive,
	}
}

// ListOffersResponse wraps the list of offers.
type ListOffersResponse struct {
	Offers []OfferResponse `json:"offers"`
}
