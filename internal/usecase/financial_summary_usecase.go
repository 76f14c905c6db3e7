package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"billing_saas/internal/domain/billing"
	"billing_saas/internal/domain/entities"
	"billing_saas/internal/usecase/interfaces"
)

var (
	ErrInvalidClientID = errors.New("invalid client id")
	ErrClientNotFound  = errors.New("client not found")
	ErrInvalidWindow   = errors.New("invalid summary window")
)

// IFinancialSummaryUseCase computes the windowed unbilled/billed/paid
// financial summary for one client. The summary is derived fresh on every
// call; nothing is cached.
type IFinancialSummaryUseCase interface {
	GetClientSummary(ctx context.Context, clientID string, from, to time.Time) (billing.Summary, error)
}

type FinancialSummaryUseCase struct {
	repo interfaces.IBillingSnapshotRepository
}

var _ IFinancialSummaryUseCase = (*FinancialSummaryUseCase)(nil)

func NewFinancialSummaryUseCase(repo interfaces.IBillingSnapshotRepository) *FinancialSummaryUseCase {
	return &FinancialSummaryUseCase{repo: repo}
}

func (u *FinancialSummaryUseCase) GetClientSummary(ctx context.Context, clientID string, from, to time.Time) (billing.Summary, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return billing.Summary{}, ErrInvalidClientID
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return billing.Summary{}, ErrInvalidWindow
	}

	win, err := u.repo.GetClientWindow(ctx, clientID, from, to)
	if err != nil {
		return billing.Summary{}, err
	}
	// Soft-deleted clients are excluded from active aggregation paths; only
	// historical invoice rendering keeps seeing them.
	if win.Client.ID == "" || win.Client.IsDeleted() {
		return billing.Summary{}, ErrClientNotFound
	}

	clients := map[string]entities.Client{win.Client.ID: win.Client}
	return billing.Aggregate(win.Entries, clients, win.Invoices), nil
}
