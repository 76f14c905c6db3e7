package interfaces

import (
	"context"
	"time"

	"billing_saas/internal/domain/entities"
)

// IBillingSnapshotRepository abstracts the persistence collaborator that
// supplies fully materialized, already-joined billing data.
//
// The document pipeline must be able to:
//   - load one invoice with its entry set and owning client+organization as a
//     single consistent snapshot (no torn reads across the join)
//   - load a client's entries inside a time window, with the invoices those
//     entries reference
//
// Both are read paths; this service never writes relational state.
type IBillingSnapshotRepository interface {
	GetInvoiceSnapshot(ctx context.Context, invoiceID string) (entities.InvoiceSnapshot, error)
	GetClientWindow(ctx context.Context, clientID string, from, to time.Time) (entities.ClientWindow, error)
}
