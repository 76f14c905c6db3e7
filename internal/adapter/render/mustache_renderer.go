package render

import (
	"errors"

	"billing_saas/internal/domain/billing"
	"billing_saas/internal/domain/entities"
	"billing_saas/internal/usecase/interfaces"

	"github.com/cbroglie/mustache"
)

// fallbackFooterHTML is used when no footer template document exists. The
// pageNumber/totalPages spans are resolved by the rendering engine on every
// page.
const fallbackFooterHTML = `<div style="text-align: right;width: 297mm;font-size: 8px;"><span style="margin-right: 1cm"><span class="pageNumber"></span> of <span class="totalPages"></span></span></div>`

// MustacheInvoiceRenderer renders invoice markup through Mustache templates.
//
// Mustache gives exactly the contract the pipeline needs: variable
// substitution and section iteration only, interpolation HTML-escaped by
// default, missing keys rendered empty, and no way for invoice content to
// reach outside the supplied view.
type MustacheInvoiceRenderer struct {
	source interfaces.ITemplateSource
}

var _ interfaces.IInvoiceRenderer = (*MustacheInvoiceRenderer)(nil)

func NewMustacheInvoiceRenderer(source interfaces.ITemplateSource) *MustacheInvoiceRenderer {
	return &MustacheInvoiceRenderer{source: source}
}

func (r *MustacheInvoiceRenderer) RenderInvoice(snap entities.InvoiceSnapshot, totals billing.InvoiceTotals) (interfaces.RenderedMarkup, error) {
	view := BuildInvoiceView(snap, totals)

	body, err := r.renderTemplate(interfaces.TemplateInvoiceBody, view)
	if err != nil {
		return interfaces.RenderedMarkup{}, err
	}

	header, err := r.renderTemplate(interfaces.TemplateInvoiceHeader, view)
	if err != nil {
		return interfaces.RenderedMarkup{}, err
	}

	footer, err := r.renderTemplate(interfaces.TemplateInvoiceFooter, view)
	if errors.Is(err, interfaces.ErrTemplateNotFound) {
		footer = fallbackFooterHTML
	} else if err != nil {
		return interfaces.RenderedMarkup{}, err
	}

	return interfaces.RenderedMarkup{Body: body, Header: header, Footer: footer}, nil
}

func (r *MustacheInvoiceRenderer) renderTemplate(name string, view map[string]interface{}) (string, error) {
	tpl, err := r.source.Load(name)
	if err != nil {
		return "", err
	}
	return mustache.Render(tpl, view)
}
