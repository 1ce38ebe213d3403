package domain

import "github.com/shopspring/decimal"

// UserSalesRecord is one employee's verified sales for a commission month,
// as aggregated by the reporting repository. Currency is the currency the
// employee's deals are recorded in.
type UserSalesRecord struct {
	UserID            string
	FullName          string
	Currency          string
	TotalSales        decimal.Decimal
	CommissionPercent decimal.Decimal
	Bonus             decimal.Decimal
}

// CommissionRow is the computed commission for one employee.
// When Currency differs from BaseCurrency, ConvertedAmount carries the
// sales converted at Rate and the commission is computed on it.
type CommissionRow struct {
	UserID              string          `json:"userID"`
	Name                string          `json:"name"`
	Currency            string          `json:"currency"`
	TotalSales          decimal.Decimal `json:"totalSales"`
	TotalReceivedAmount decimal.Decimal `json:"totalReceivedAmount"`
	CommissionPercent   decimal.Decimal `json:"commissionPercent"`
	Rate                decimal.Decimal `json:"rate"`
	Bonus               decimal.Decimal `json:"bonus"`
	ConvertedAmount     decimal.Decimal `json:"convertedAmount"`
	TotalCommission     decimal.Decimal `json:"totalCommission"`
	BaseCurrency        string          `json:"baseCurrency"`
}

// CommissionFromSales applies the commission formula to a sales figure:
// sales * percent / 100 + bonus. Zero sales yields the bonus alone.
func CommissionFromSales(sales, percent, bonus decimal.Decimal) decimal.Decimal {
	return sales.Mul(percent).Div(decimal.NewFromInt(100)).Add(bonus)
}
