package queries

import (
	"context"

	"tableside/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCurrentPriceQueryHandler retrieves the newest price-ledger entry for a
// product. Later-dated entries that are not yet effective are skipped.
type GetCurrentPriceQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentPriceQueryHandler creates a handler for current price queries.
// Requires a GORM database connection for query execution.
func NewGetCurrentPriceQueryHandler(db *gorm.DB) GetCurrentPriceQueryHandler {
	return GetCurrentPriceQueryHandler{db: db}
}

// Handle executes the query to retrieve the current price entry.
// Returns a not-found error when the product has no effective price.
func (h GetCurrentPriceQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentPriceQuery,
) (PriceEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return PriceEntryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+priceEntryColumns+`
		FROM price_ledger
		WHERE organization_id = ?
		  AND product_id = ?
		  AND effective_from <= NOW()
		ORDER BY effective_from DESC, created_at DESC
		LIMIT 1
	`, query.OrganizationID().String(), query.ProductID().String()).Rows()
	if err != nil {
		return PriceEntryResponse{}, err
	}
	defer rows.Close()

	entries, err := scanPriceEntryRows(rows)
	if err != nil {
		return PriceEntryResponse{}, err
	}
	if len(entries) == 0 {
		return PriceEntryResponse{}, errs.NewObjectNotFoundError("productID", query.ProductID())
	}

	return entries[0], nil
}
