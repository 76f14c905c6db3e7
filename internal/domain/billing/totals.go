package billing

import (
	"billing_saas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Line is one computed invoice line item. Running entries are still listed,
// at zero hours and zero amount.
type Line struct {
	Entry  entities.TimeEntry
	Hours  decimal.Decimal
	Rate   decimal.Decimal
	Amount decimal.Decimal
}

// InvoiceTotals carries the computed amounts for one invoice. All values are
// full-precision decimals; formatting to currency strings is strictly a
// presentation concern and never feeds back into arithmetic.
type InvoiceTotals struct {
	Lines     []Line
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
}

// HasTax reports whether a tax line belongs on the invoice. A zero tax
// amount, whether from a missing or a zero rate, renders no line.
func (t InvoiceTotals) HasTax() bool {
	return !t.TaxAmount.IsZero()
}

// HasDiscount reports whether a discount line belongs on the invoice.
// Non-positive discounts are never shown.
func (t InvoiceTotals) HasDiscount() bool {
	return t.Discount.IsPositive()
}

// ComputeInvoiceTotals derives per-line amounts and the invoice subtotal,
// tax amount and grand total from the invoice's fixed entry set.
//
//	subtotal  = Σ hours × effective rate
//	taxAmount = subtotal × tax   (0 when tax absent)
//	total     = subtotal + taxAmount − discount (discount only when positive)
func ComputeInvoiceTotals(inv entities.Invoice, entries []entities.TimeEntry, clientRate *decimal.Decimal) InvoiceTotals {
	totals := InvoiceTotals{
		Lines:     make([]Line, 0, len(entries)),
		Subtotal:  decimal.Zero,
		TaxAmount: decimal.Zero,
		Discount:  decimal.Zero,
	}

	for _, e := range entries {
		hours := e.Hours()
		rate := e.EffectiveRate(clientRate)
		amount := hours.Mul(rate)
		totals.Lines = append(totals.Lines, Line{
			Entry:  e,
			Hours:  hours,
			Rate:   rate,
			Amount: amount,
		})
		totals.Subtotal = totals.Subtotal.Add(amount)
	}

	if inv.Tax != nil {
		totals.TaxAmount = totals.Subtotal.Mul(*inv.Tax)
	}
	if inv.Discount != nil && inv.Discount.IsPositive() {
		totals.Discount = *inv.Discount
	}
	totals.Total = totals.Subtotal.Add(totals.TaxAmount).Sub(totals.Discount)
	return totals
}
