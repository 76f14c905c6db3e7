package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"billing_saas/internal/domain/billing"
	"billing_saas/internal/logger"
	"billing_saas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidInvoiceID = errors.New("invalid invoice id")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	// ErrStorageConflict: the backend still reported an immutable-object
	// conflict after the delete+retry cycle. Never retried further.
	ErrStorageConflict = errors.New("storage conflict persisted after delete and retry")
)

// Stage identifies the pipeline step that produced a failure.
type Stage string

const (
	StageLoad      Stage = "load"
	StageAggregate Stage = "aggregate"
	StageRender    Stage = "render"
	StageDocument  Stage = "document"
	StageStore     Stage = "store"
)

// StageError tags a pipeline failure with the stage that produced it.
// The pipeline surfaces the first failure; stages are never retried.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("invoice pipeline failed at %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageFailure(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}

// DocumentKey is the deterministic storage key for an invoice document.
// Regeneration for the same invoice always lands on the same key, which is
// what makes re-invoking the whole pipeline safe.
func DocumentKey(invoiceID string) string {
	return fmt.Sprintf("invoices/%s.pdf", invoiceID)
}

// DocumentReceipt confirms the stored artifact for one pipeline run.
type DocumentReceipt struct {
	InvoiceID   string
	ObjectKey   string
	SizeBytes   int
	RunID       string
	GeneratedAt time.Time
}

// IInvoicePdfUseCase runs the billing document pipeline for one invoice:
// load snapshot, compute totals, render markup, generate the PDF, upsert it
// into durable storage.
type IInvoicePdfUseCase interface {
	Generate(ctx context.Context, invoiceID string) (DocumentReceipt, error)
}

type InvoicePdfUseCase struct {
	repo     interfaces.IBillingSnapshotRepository
	renderer interfaces.IInvoiceRenderer
	engine   interfaces.IDocumentEngine
	store    interfaces.IDocumentStore
	log      zerolog.Logger
}

var _ IInvoicePdfUseCase = (*InvoicePdfUseCase)(nil)

func NewInvoicePdfUseCase(
	repo interfaces.IBillingSnapshotRepository,
	renderer interfaces.IInvoiceRenderer,
	engine interfaces.IDocumentEngine,
	store interfaces.IDocumentStore,
) *InvoicePdfUseCase {
	return &InvoicePdfUseCase{
		repo:     repo,
		renderer: renderer,
		engine:   engine,
		store:    store,
		log:      logger.WithComponent("invoice-pdf"),
	}
}

// Generate drives the pipeline to its terminal state. Either the complete
// artifact ends up at the invoice's storage key, or the first failing stage
// surfaces as a StageError and nothing is treated as committed.
func (u *InvoicePdfUseCase) Generate(ctx context.Context, invoiceID string) (DocumentReceipt, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return DocumentReceipt{}, stageFailure(StageLoad, ErrInvalidInvoiceID)
	}

	runID := uuid.NewString()
	started := time.Now()
	u.log.Info().
		Str("invoice_id", invoiceID).
		Str("run_id", runID).
		Msg("invoice pdf generation started")

	snap, err := u.repo.GetInvoiceSnapshot(ctx, invoiceID)
	if err != nil {
		return DocumentReceipt{}, stageFailure(StageLoad, err)
	}
	if snap.Invoice.ID == "" {
		return DocumentReceipt{}, stageFailure(StageLoad, ErrInvoiceNotFound)
	}

	totals := billing.ComputeInvoiceTotals(snap.Invoice, snap.Entries, snap.Client.HourlyRate)

	markup, err := u.renderer.RenderInvoice(snap, totals)
	if err != nil {
		return DocumentReceipt{}, stageFailure(StageRender, err)
	}

	pdf, err := u.engine.RenderDocument(ctx, markup.Body, markup.Header, markup.Footer)
	if err != nil {
		return DocumentReceipt{}, stageFailure(StageDocument, err)
	}

	key := DocumentKey(invoiceID)
	if err := upsertDocument(ctx, u.store, key, pdf, "application/pdf"); err != nil {
		return DocumentReceipt{}, stageFailure(StageStore, err)
	}

	u.log.Info().
		Str("invoice_id", invoiceID).
		Str("run_id", runID).
		Str("object_key", key).
		Int("size_bytes", len(pdf)).
		Dur("elapsed", time.Since(started)).
		Msg("invoice pdf generation finished")

	return DocumentReceipt{
		InvoiceID:   invoiceID,
		ObjectKey:   key,
		SizeBytes:   len(pdf),
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
