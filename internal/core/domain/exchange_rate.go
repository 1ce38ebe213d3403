package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a provided conversion rate between two currencies.
// Rates are inputs maintained by admins; nothing in this system derives them.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}
