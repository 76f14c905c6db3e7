package interfaces

import "errors"

// Logical template document names resolvable through ITemplateSource.
const (
	TemplateInvoiceBody   = "invoice_body.html"
	TemplateInvoiceHeader = "invoice_header.html"
	TemplateInvoiceFooter = "invoice_footer.html"
)

// ErrTemplateNotFound marks a template document missing from the source.
// The footer is the only template with a built-in fallback.
var ErrTemplateNotFound = errors.New("template not found")

// ITemplateSource resolves template documents by logical name.
type ITemplateSource interface {
	Load(name string) (string, error)
}
