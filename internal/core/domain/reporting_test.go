package domain_test

import (
	"testing"
	"time"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolveWindow(t *testing.T) {
	// mid-month reference point, arbitrary non-UTC zone
	loc := time.FixedZone("UTC+5", 5*3600)
	now := time.Date(2026, time.March, 14, 9, 30, 0, 0, loc)

	tests := []struct {
		name      string
		window    string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "this month",
			window:    domain.WindowThisMonth,
			wantStart: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "last month",
			window:    domain.WindowLastMonth,
			wantStart: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "last 30 days includes today",
			window:    domain.WindowLast30Days,
			wantStart: time.Date(2026, time.February, 12, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "this year",
			window:    domain.WindowThisYear,
			wantStart: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "unknown shorthand",
			window:  "fortnight",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ResolveWindow(tt.window, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Start.Equal(tt.wantStart), "start: got %v want %v", got.Start, tt.wantStart)
			assert.True(t, got.End.Equal(tt.wantEnd), "end: got %v want %v", got.End, tt.wantEnd)
		})
	}
}

func TestWindow_Contains(t *testing.T) {
	w := domain.Window{
		Start: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, w.Contains(w.Start), "start is inclusive")
	assert.True(t, w.Contains(time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.Contains(w.End), "end is exclusive")
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
}

func TestPaymentStatus(t *testing.T) {
	tests := []struct {
		status  domain.PaymentStatus
		valid   bool
		decided bool
	}{
		{domain.PaymentPending, true, false},
		{domain.PaymentVerified, true, true},
		{domain.PaymentDenied, true, true},
		{domain.PaymentStatus("MAYBE"), false, false},
		{domain.PaymentStatus(""), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.Valid())
			assert.Equal(t, tt.decided, tt.status.Decided())
		})
	}
}

func TestSalesTotals_Add(t *testing.T) {
	total := domain.SalesTotals{
		TotalSales: decimal.NewFromInt(1000),
		TotalPaid:  decimal.NewFromInt(400),
		TotalDues:  decimal.NewFromInt(600),
		DealCount:  2,
	}
	total.Add(domain.SalesTotals{
		TotalSales: decimal.NewFromInt(500),
		TotalPaid:  decimal.NewFromInt(500),
		TotalDues:  decimal.Zero,
		DealCount:  1,
	})

	assert.True(t, total.TotalSales.Equal(decimal.NewFromInt(1500)))
	assert.True(t, total.TotalPaid.Equal(decimal.NewFromInt(900)))
	assert.True(t, total.TotalDues.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, 3, total.DealCount)
}
