package dto

import (
	"time"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDealRequest opens a deal for a client.
type CreateDealRequest struct {
	DealName     string          `json:"dealName" binding:"required"`
	ClientID     string          `json:"clientID" binding:"required"`
	WorkTypeID   string          `json:"workTypeID" binding:"required"`
	SourceTypeID string          `json:"sourceTypeID" binding:"required"`
	DealValue    decimal.Decimal `json:"dealValue" binding:"required"`
	DealDate     time.Time       `json:"dealDate" binding:"required"`
	DueDate      time.Time       `json:"dueDate" binding:"required"`
	Remarks      string          `json:"remarks"`
	UserID       string          `json:"userID"` // owning salesperson; defaults to the caller
}

// UpdateDealRequest patches deal fields. Pointers distinguish omitted
// fields from zero values.
type UpdateDealRequest struct {
	DealName  *string          `json:"dealName"`
	DealValue *decimal.Decimal `json:"dealValue"`
	DealDate  *time.Time       `json:"dealDate"`
	DueDate   *time.Time       `json:"dueDate"`
	Remarks   *string          `json:"remarks"`
}

// ListDealsParams filters the deal list.
type ListDealsParams struct {
	ClientID  string  `form:"clientID"`
	UserID    string  `form:"userID"`
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// DealResponse is the API shape of a deal, including collection figures.
type DealResponse struct {
	DealID       string            `json:"dealID"`
	DealNumber   string            `json:"dealNumber"`
	DealName     string            `json:"dealName"`
	ClientID     string            `json:"clientID"`
	WorkTypeID   string            `json:"workTypeID"`
	SourceTypeID string            `json:"sourceTypeID"`
	DealValue    decimal.Decimal   `json:"dealValue"`
	DealDate     time.Time         `json:"dealDate"`
	DueDate      time.Time         `json:"dueDate"`
	Remarks      string            `json:"remarks,omitempty"`
	UserID       string            `json:"userID"`
	TotalPaid    decimal.Decimal   `json:"totalPaid"`
	DueAmount    decimal.Decimal   `json:"dueAmount"`
	Payments     []PaymentResponse `json:"payments,omitempty"`
}

// ToDealResponse converts a domain deal; collection figures are derived
// from whatever payments are loaded on it.
func ToDealResponse(d *domain.Deal) DealResponse {
	paid := d.VerifiedPaid()
	resp := DealResponse{
		DealID:       d.DealID,
		DealNumber:   d.DealNumber,
		DealName:     d.DealName,
		ClientID:     d.ClientID,
		WorkTypeID:   d.WorkTypeID,
		SourceTypeID: d.SourceTypeID,
		DealValue:    d.DealValue,
		DealDate:     d.DealDate,
		DueDate:      d.DueDate,
		Remarks:      d.Remarks,
		UserID:       d.UserID,
		TotalPaid:    paid,
		DueAmount:    d.DueAmount(paid),
	}
	if len(d.Payments) > 0 {
		resp.Payments = ToPaymentResponses(d.Payments)
	}
	return resp
}

// ToDealResponses converts a slice of domain deals.
func ToDealResponses(deals []domain.Deal) []DealResponse {
	out := make([]DealResponse, len(deals))
	for i := range deals {
		out[i] = ToDealResponse(&deals[i])
	}
	return out
}

// ListDealsResponse wraps a page of deals.
type ListDealsResponse struct {
	Deals     []DealResponse `json:"deals"`
	NextToken *string        `json:"nextToken,omitempty"`
}
