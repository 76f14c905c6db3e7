package interfaces

import (
	"billing_saas/internal/domain/billing"
	"billing_saas/internal/domain/entities"
)

// RenderedMarkup is the ephemeral markup triple produced for one invoice.
type RenderedMarkup struct {
	Body   string
	Header string
	Footer string
}

// IInvoiceRenderer turns an invoice snapshot plus its computed totals into
// body/header/footer markup. Rendering is restricted to variable substitution
// and list iteration over the supplied model: no logic evaluation, no access
// outside the model, missing keys render empty.
type IInvoiceRenderer interface {
	RenderInvoice(snap entities.InvoiceSnapshot, totals billing.InvoiceTotals) (RenderedMarkup, error)
}
