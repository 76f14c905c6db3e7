package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is the billed party. Its HourlyRate is the default applied to time
// entries that carry no rate override of their own.
//
// Clients are soft-deleted: DeletedAt set means the client is gone from
// active aggregation paths, but stays readable so finalized invoices keep
// rendering historically.
type Client struct {
	ID             string
	OrganizationID string
	Name           string
	Email          string
	HourlyRate     *decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// IsDeleted reports whether the client has been soft-deleted.
func (c Client) IsDeleted() bool {
	return c.DeletedAt != nil
}

// Organization owns clients and appears as the issuing party on invoices.
type Organization struct {
	ID      string
	Name    string
	Email   string
	Address string
}
