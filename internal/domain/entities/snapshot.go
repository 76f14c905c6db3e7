package entities

// InvoiceSnapshot is the single consistent read unit the document pipeline
// consumes: the invoice, its full time-entry set and the owning client and
// organization, fully materialized up front. The pipeline never issues
// additional reads mid-flight.
type InvoiceSnapshot struct {
	Invoice      Invoice
	Client       Client
	Organization Organization
	Entries      []TimeEntry
}

// ClientWindow is the read unit for windowed financial summaries: a client,
// its time entries inside the window, and every invoice those entries
// reference (needed to split billed from paid).
type ClientWindow struct {
	Client   Client
	Entries  []TimeEntry
	Invoices map[string]Invoice
}
