package queries

import (
	"database/sql"
	"time"

	"tableside/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceEntryResponse represents a read model of one price-ledger entry.
type PriceEntryResponse struct {
	ID            kernel.UUID
	ProductID     kernel.UUID
	Price         decimal.Decimal
	PreviousPrice *decimal.Decimal
	Currency      string
	Reason        string
	Notes         *string
	EffectiveFrom time.Time
	CreatedBy     *kernel.UUID
	CreatedAt     time.Time
}

// priceEntryColumns is the column list every ledger query selects, in the
// order scanPriceEntryRows expects.
const priceEntryColumns = `
	id,
	product_id,
	price,
	previous_price,
	currency,
	reason,
	notes,
	effective_from,
	created_by,
	created_at`

func scanPriceEntryRows(rows *sql.Rows) ([]PriceEntryResponse, error) {
	entries := make([]PriceEntryResponse, 0)

	for rows.Next() {
		var (
			id            uuid.UUID
			productID     uuid.UUID
			price         decimal.Decimal
			previousPrice *decimal.Decimal
			currency      string
			reason        string
			notes         *string
			effectiveFrom time.Time
			createdBy     *uuid.UUID
			createdAt     time.Time
		)
		if err := rows.Scan(
			&id, &productID, &price, &previousPrice, &currency,
			&reason, &notes, &effectiveFrom, &createdBy, &createdAt,
		); err != nil {
			return nil, err
		}

		entryID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		prodID, err := kernel.UUIDFromBytes(productID[:])
		if err != nil {
			return nil, err
		}

		entry := PriceEntryResponse{
			ID:            entryID,
			ProductID:     prodID,
			Price:         price,
			PreviousPrice: previousPrice,
			Currency:      currency,
			Reason:        reason,
			Notes:         notes,
			EffectiveFrom: effectiveFrom,
			CreatedAt:     createdAt,
		}
		if createdBy != nil {
			by, byErr := kernel.UUIDFromBytes(createdBy[:])
			if byErr != nil {
				return nil, byErr
			}
			entry.CreatedBy = &by
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
