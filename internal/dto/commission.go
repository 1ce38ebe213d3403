package dto

import "github.com/SaPok5/prs-sub001/internal/core/domain"

// GetCommissionsParams selects the commission month and an optional base
// currency to convert cross-currency rows into.
type GetCommissionsParams struct {
	Month        string `form:"month" binding:"required"` // YYYY-MM
	BaseCurrency string `form:"baseCurrency" binding:"omitempty,currencycode"`
}

// CommissionsResponse is the computed commission sheet for one month.
type CommissionsResponse struct {
	Month        string                 `json:"month"`
	BaseCurrency string                 `json:"baseCurrency,omitempty"`
	Rows         []domain.CommissionRow `json:"rows"`
}
