package queries

import (
	"context"

	"tableside/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPriceAtTimeQueryHandler retrieves the ledger entry effective at a
// point in time: the newest entry whose effective-from does not exceed it.
type GetPriceAtTimeQueryHandler struct {
	db *gorm.DB
}

// NewGetPriceAtTimeQueryHandler creates a handler for point-in-time price
// queries. Requires a GORM database connection for query execution.
func NewGetPriceAtTimeQueryHandler(db *gorm.DB) GetPriceAtTimeQueryHandler {
	return GetPriceAtTimeQueryHandler{db: db}
}

// Handle executes the query.
// Returns a not-found error when the product had no price at that moment.
func (h GetPriceAtTimeQueryHandler) Handle(
	ctx context.Context,
	query GetPriceAtTimeQuery,
) (PriceEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return PriceEntryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+priceEntryColumns+`
		FROM price_ledger
		WHERE organization_id = ?
		  AND product_id = ?
		  AND effective_from <= ?
		ORDER BY effective_from DESC, created_at DESC
		LIMIT 1
	`, query.OrganizationID().String(), query.ProductID().String(), query.At()).Rows()
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
