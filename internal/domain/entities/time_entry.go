package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

var nanosPerMinute = decimal.NewFromInt(int64(time.Minute))

// TimeEntry is a single tracked block of work.
//
// Lifecycle notes:
//   - EndTime == nil means the entry is still running. It carries no duration
//     and no amount until it is stopped; it must never be read as zero-value
//     unbilled work.
//   - InvoiceID == nil means the entry has not been billed. Once attached to
//     an invoice the attribution is fixed: an entry belongs to at most one
//     invoice, ever.
type TimeEntry struct {
	ID          string
	ClientID    string
	InvoiceID   *string
	Description string
	StartTime   time.Time
	EndTime     *time.Time
	HourlyRate  *decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsRunning reports whether the entry has not been stopped yet.
func (e TimeEntry) IsRunning() bool {
	return e.EndTime == nil
}

// Minutes returns the entry duration in minutes as an exact decimal.
// Running entries contribute zero, and so does an entry whose end precedes
// its start: durations never go negative into financial math.
func (e TimeEntry) Minutes() decimal.Decimal {
	if e.EndTime == nil {
		return decimal.Zero
	}
	d := e.EndTime.Sub(e.StartTime)
	if d <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(d.Nanoseconds()).Div(nanosPerMinute)
}

// Hours returns the entry duration in hours as an exact decimal.
func (e TimeEntry) Hours() decimal.Decimal {
	return e.Minutes().Div(decimal.NewFromInt(60))
}

// EffectiveRate resolves the hourly rate applied to this entry: the entry
// override when present, else the client default, else zero.
func (e TimeEntry) EffectiveRate(clientDefault *decimal.Decimal) decimal.Decimal {
	if e.HourlyRate != nil {
		return *e.HourlyRate
	}
	if clientDefault != nil {
		return *clientDefault
	}
	return decimal.Zero
}
