package response

import (
	"time"

	"billing_saas/internal/usecase"
)

// DocumentResponse confirms a stored invoice document.
type DocumentResponse struct {
	InvoiceID   string    `json:"invoice_id"`
	ObjectKey   string    `json:"object_key"`
	SizeBytes   int       `json:"size_bytes"`
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
}

func FromReceipt(r usecase.DocumentReceipt) DocumentResponse {
	return DocumentResponse{
		InvoiceID:   r.InvoiceID,
		ObjectKey:   r.ObjectKey,
		SizeBytes:   r.SizeBytes,
		RunID:       r.RunID,
		GeneratedAt: r.GeneratedAt,
	}
}
