package response

import (
	"billing_saas/internal/domain/billing"
)

// BucketResponse carries one bucket's totals. Minutes and amounts are
// decimal strings: JSON numbers would reintroduce the float precision the
// internals deliberately avoid.
type BucketResponse struct {
	Minutes string `json:"minutes"`
	Amount  string `json:"amount"`
}

// FinancialSummaryResponse is the windowed unbilled/billed/paid breakdown.
type FinancialSummaryResponse struct {
	Unbilled     BucketResponse `json:"unbilled"`
	Billed       BucketResponse `json:"billed"`
	Paid         BucketResponse `json:"paid"`
	TotalMinutes string         `json:"total_minutes"`
}

func FromSummary(s billing.Summary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		Unbilled:     fromBucket(s.Unbilled),
		Billed:       fromBucket(s.Billed),
		Paid:         fromBucket(s.Paid),
		TotalMinutes: s.TotalMinutes().String(),
	}
}

func fromBucket(t billing.BucketTotals) BucketResponse {
	return BucketResponse{
		Minutes: t.Minutes.String(),
		Amount:  t.Amount.String(),
	}
}
