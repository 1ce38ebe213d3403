package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal is a contracted unit of work/sale associated with a client.
// DealNumber is the human-readable org-scoped serial (e.g. "DL-0042").
type Deal struct {
	DealID         string          `json:"dealID"`
	DealNumber     string          `json:"dealNumber"`
	DealName       string          `json:"dealName"`
	ClientID       string          `json:"clientID"`
	WorkTypeID     string          `json:"workTypeID"`
	SourceTypeID   string          `json:"sourceTypeID"`
	DealValue      decimal.Decimal `json:"dealValue"`
	DealDate       time.Time       `json:"dealDate"`
	DueDate        time.Time       `json:"dueDate"`
	Remarks        string          `json:"remarks,omitempty"`
	UserID         string          `json:"userID"` // owning salesperson
	OrganizationID string          `json:"organizationID"`
	Payments       []Payment       `json:"payments,omitempty"` // loaded on demand
	AuditFields
}

// VerifiedPaid sums the received amounts of the deal's VERIFIED payments.
func (d Deal) VerifiedPaid() decimal.Decimal {
	paid := decimal.Zero
	for _, p := range d.Payments {
		if p.Status == PaymentVerified {
			paid = paid.Add(p.ReceivedAmount)
		}
	}
	return paid
}

// DueAmount is the contracted value minus the verified amount received,
// floored at zero. Overpaid deals never contribute a negative due.
func (d Deal) DueAmount(verifiedPaid decimal.Decimal) decimal.Decimal {
	due := d.DealValue.Sub(verifiedPaid)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}
