package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice groups a fixed set of time entries for one client.
//
// Monetary representation:
//   - Tax is a fractional rate (0.1 = 10%), optional.
//   - Discount is an absolute amount, optional; only positive discounts are
//     ever applied.
//   - PaidAt is nil until payment is recorded by the payments collaborator.
type Invoice struct {
	ID        string
	ClientID  string
	Number    string
	Tax       *decimal.Decimal
	Discount  *decimal.Decimal
	DueDate   time.Time
	CreatedAt time.Time
	PaidAt    *time.Time
}

// IsPaid reports whether payment has been recorded for the invoice.
func (i Invoice) IsPaid() bool {
	return i.PaidAt != nil
}
