package queries

import (
	"context"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/pricing"

	"gorm.io/gorm"
)

// GetPriceChangeStatsQueryHandler aggregates ledger entries into change
// statistics. Rows are reconstructed into domain entries so the aggregation
// itself lives in the pricing package and stays covered by its tests.
type GetPriceChangeStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetPriceChangeStatsQueryHandler creates a handler for price statistics
// queries. Requires a GORM database connection for query execution.
func NewGetPriceChangeStatsQueryHandler(db *gorm.DB) GetPriceChangeStatsQueryHandler {
	return GetPriceChangeStatsQueryHandler{db: db}
}

// Handle executes the query. An empty range yields zero counts and a nil
// average, not an error.
func (h GetPriceChangeStatsQueryHandler) Handle(
	ctx context.Context,
	query GetPriceChangeStatsQuery,
) (pricing.ChangeStats, error) {
	if err := query.Validate(); err != nil {
		return pricing.ChangeStats{}, err
	}

	sql := `
		SELECT` + priceEntryColumns + `
		FROM price_ledger
		WHERE organization_id = ?
		  AND effective_from >= ?
		  AND effective_from <= ?`
	args := []any{query.OrganizationID().String(), query.From(), query.To()}

	if productID := query.ProductID(); productID != nil {
		sql += `
		  AND product_id = ?`
		args = append(args, productID.String())
	}

	sql += `
		ORDER BY effective_from, created_at`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return pricing.ChangeStats{}, err
	}
	defer rows.Close()

	responses, err := scanPriceEntryRows(rows)
	if err != nil {
		return pricing.ChangeStats{}, err
	}

	entries := make([]*pricing.PriceEntry, 0, len(responses))
	for _, resp := range responses {
		entry, restoreErr := h.restoreEntry(query.OrganizationID(), resp)
		if restoreErr != nil {
			return pricing.ChangeStats{}, restoreErr
		}
		entries = append(entries, entry)
	}

	return pricing.ComputeChangeStats(entries), nil
}

func (h GetPriceChangeStatsQueryHandler) restoreEntry(
	organizationID kernel.UUID,
	resp PriceEntryResponse,
) (*pricing.PriceEntry, error) {
	price, err := kernel.NewMoney(resp.Price, resp.Currency)
	if err != nil {
		return nil, err
	}

	var previousPrice *kernel.Money
	if resp.PreviousPrice != nil {
		prev, prevErr := kernel.NewMoney(*resp.PreviousPrice, resp.Currency)
		if prevErr != nil {
			return nil, prevErr
		}
		previousPrice = &prev
	}

	reason, err := pricing.ChangeReasonFromString(resp.Reason)
	if err != nil {
		return nil, err
	}

	return pricing.RestorePriceEntry(
		resp.ID,
		organizationID,
		resp.ProductID,
		price,
		previousPrice,
		reason,
		resp.Notes,
		resp.EffectiveFrom,
		resp.CreatedBy,
		resp.CreatedAt,
	)
}
