package billing

import (
	"billing_saas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Bucket classifies a time entry's financial contribution.
type Bucket string

const (
	// BucketUnbilled: entry not attached to any invoice.
	BucketUnbilled Bucket = "unbilled"
	// BucketBilled: entry attached to an invoice that is not paid yet.
	BucketBilled Bucket = "billed"
	// BucketPaid: entry attached to a paid invoice.
	BucketPaid Bucket = "paid"
)

// BucketTotals accumulates minutes and monetary amount for one bucket.
// Minutes are summed exactly, never rounded per entry; amounts stay
// full-precision decimals until presentation.
type BucketTotals struct {
	Minutes decimal.Decimal
	Amount  decimal.Decimal
}

func (t BucketTotals) add(minutes, amount decimal.Decimal) BucketTotals {
	return BucketTotals{
		Minutes: t.Minutes.Add(minutes),
		Amount:  t.Amount.Add(amount),
	}
}

// Summary is the derived financial view over a window of time entries. It is
// computed fresh on every query and never persisted or cached.
type Summary struct {
	Unbilled BucketTotals
	Billed   BucketTotals
	Paid     BucketTotals
}

// TotalMinutes sums minutes across all three buckets. Over any window this
// equals the summed duration of every finished entry in the window.
func (s Summary) TotalMinutes() decimal.Decimal {
	return s.Unbilled.Minutes.Add(s.Billed.Minutes).Add(s.Paid.Minutes)
}

// ClassifyEntry places an entry into exactly one bucket. Entries referencing
// an invoice missing from the lookup count as billed: the attribution exists
// even if the invoice record was not materialized.
func ClassifyEntry(e entities.TimeEntry, invoices map[string]entities.Invoice) Bucket {
	if e.InvoiceID == nil {
		return BucketUnbilled
	}
	inv, ok := invoices[*e.InvoiceID]
	if !ok || !inv.IsPaid() {
		return BucketBilled
	}
	return BucketPaid
}

// Aggregate folds time entries into per-bucket minute and amount totals.
//
// The function is total over its input domain: running entries and entries
// with inverted timestamps contribute zero everywhere, and an entry whose
// client is missing from the lookup is billed at rate zero, not rejected.
func Aggregate(entries []entities.TimeEntry, clients map[string]entities.Client, invoices map[string]entities.Invoice) Summary {
	var s Summary
	for _, e := range entries {
		minutes := e.Minutes()
		if minutes.IsZero() {
			continue
		}

		var clientRate *decimal.Decimal
		if c, ok := clients[e.ClientID]; ok {
			clientRate = c.HourlyRate
		}
		amount := e.Hours().Mul(e.EffectiveRate(clientRate))

		switch ClassifyEntry(e, invoices) {
		case BucketUnbilled:
			s.Unbilled = s.Unbilled.add(minutes, amount)
		case BucketBilled:
			s.Billed = s.Billed.add(minutes, amount)
		case BucketPaid:
			s.Paid = s.Paid.add(minutes, amount)
		}
	}
	return s
}
