package ports

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/pricing"
)

// PriceHistoryFilter narrows a price history query. Zero values mean
// "no constraint" for each field.
type PriceHistoryFilter struct {
	// From restricts the result to entries effective at or after this time.
	From *time.Time

	// To restricts the result to entries effective at or before this time.
	To *time.Time

	// Reason restricts the result to entries recorded with this reason.
	Reason *pricing.ChangeReason

	// Limit caps the number of returned entries. Zero means no limit.
	Limit int
}

// PriceLedgerRepository defines the persistence contract for the append-only
// price ledger. The interface deliberately exposes no update or delete
// operations: ledger entries are immutable once written, and attempting to
// mutate them at the storage level must surface as an immutability violation.
type PriceLedgerRepository interface {
	// Append persists a new ledger entry. The entry must be valid and its
	// identifier must not already exist in the ledger.
	Append(ctx context.Context, entry *pricing.PriceEntry) error

	// GetLatest retrieves the entry with the most recent effective-from
	// timestamp for the product within the organization.
	GetLatest(ctx context.Context, organizationID, productID kernel.UUID) (*pricing.PriceEntry, error)

	// GetAt retrieves the entry that was effective at the given point in
	// time: the most recent entry whose effective-from timestamp does not
	// exceed at.
	GetAt(ctx context.Context, organizationID, productID kernel.UUID, at time.Time) (*pricing.PriceEntry, error)

	// GetHistory retrieves the entries for the product within the
	// organization, newest first, narrowed by the filter.
	GetHistory(ctx context.Context, organizationID, productID kernel.UUID, filter PriceHistoryFilter) ([]*pricing.PriceEntry, error)

	// GetInRange retrieves the entries effective within [from, to] for the
	// product within the organization, oldest first.
	GetInRange(ctx context.Context, organizationID, productID kernel.UUID, from, to time.Time) ([]*pricing.PriceEntry, error)
}
