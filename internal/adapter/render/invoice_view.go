package render

import (
	"billing_saas/internal/domain/billing"
	"billing_saas/internal/domain/entities"
)

// BuildInvoiceView flattens a snapshot plus computed totals into the map the
// templates iterate over. Every monetary value arrives pre-formatted (two
// fixed decimals, thousands grouping) and every date in the fixed long form,
// so templates only substitute and loop.
//
// Tax and discount line presence is decided here through explicit hasTax /
// hasDiscount flags, not by template truthiness of empty strings.
func BuildInvoiceView(snap entities.InvoiceSnapshot, totals billing.InvoiceTotals) map[string]interface{} {
	lines := make([]map[string]interface{}, 0, len(totals.Lines))
	for _, ln := range totals.Lines {
		lines = append(lines, map[string]interface{}{
			"date":        billing.FormatDate(ln.Entry.StartTime),
			"description": ln.Entry.Description,
			"hours":       billing.FormatHours(ln.Hours),
			"rate":        billing.FormatAmount(ln.Rate),
			"amount":      billing.FormatAmount(ln.Amount),
		})
	}

	return map[string]interface{}{
		"invoice": map[string]interface{}{
			"id":          snap.Invoice.ID,
			"number":      snap.Invoice.Number,
			"createdAt":   billing.FormatDate(snap.Invoice.CreatedAt),
			"dueDate":     billing.FormatDate(snap.Invoice.DueDate),
			"timeEntries": lines,
			"subtotal":    billing.FormatAmount(totals.Subtotal),
			"hasTax":      totals.HasTax(),
			"taxAmount":   billing.FormatAmount(totals.TaxAmount),
			"hasDiscount": totals.HasDiscount(),
			"discount":    billing.FormatAmount(totals.Discount),
			"total":       billing.FormatAmount(totals.Total),
		},
		"client": map[string]interface{}{
			"name":  snap.Client.Name,
			"email": snap.Client.Email,
		},
		"organization": map[string]interface{}{
			"name":    snap.Organization.Name,
			"email":   snap.Organization.Email,
			"address": snap.Organization.Address,
		},
	}
}
