package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPriceHistoryQueryHandler retrieves a product's price history from the
// ledger, newest first.
type GetPriceHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetPriceHistoryQueryHandler creates a handler for price history queries.
// Requires a GORM database connection for query execution.
func NewGetPriceHistoryQueryHandler(db *gorm.DB) GetPriceHistoryQueryHandler {
	return GetPriceHistoryQueryHandler{db: db}
}

// Handle executes the query. A product with no entries yields an empty
// slice, not an error.
func (h GetPriceHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetPriceHistoryQuery,
) ([]PriceEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT` + priceEntryColumns + `
		FROM price_ledger
		WHERE organization_id = ?
		  AND product_id = ?`
	args := []any{query.OrganizationID().String(), query.ProductID().String()}

	if from := query.From(); from != nil {
		sql += `
		  AND effective_from >= ?`
		args = append(args, *from)
	}
	if to := query.To(); to != nil {
		sql += `
		  AND effective_from <= ?`
		args = append(args, *to)
	}
	if reason := query.Reason(); reason != nil {
		sql += `
		  AND reason = ?`
		args = append(args, reason.String())
	}

	sql += `
		ORDER BY effective_from DESC, created_at DESC`
	if limit := query.Limit(); limit > 0 {
		sql += `
		LIMIT ?`
		args = append(args, limit)
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPriceEntryRows(rows)
}
