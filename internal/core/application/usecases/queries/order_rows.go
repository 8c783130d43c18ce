package queries

import (
	"context"
	"database/sql"
	"time"

	"tableside/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// scanOrderRows turns order rows into responses and attaches their items.
// Shared by the order query handlers; expects columns in the order
// id, table_id, status, payment_status, total_amount, currency, placed_at.
func scanOrderRows(ctx context.Context, db *gorm.DB, rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			id       uuid.UUID
			tableID  *uuid.UUID
			status   string
			payment  string
			total    decimal.Decimal
			currency string
			placedAt time.Time
		)
		if err := rows.Scan(&id, &tableID, &status, &payment, &total, &currency, &placedAt); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		resp := OrderResponse{
			ID:            orderID,
			Status:        status,
			PaymentStatus: payment,
			TotalAmount:   total,
			Currency:      currency,
			PlacedAt:      placedAt,
		}
		if tableID != nil {
			tid, tidErr := kernel.UUIDFromBytes(tableID[:])
			if tidErr != nil {
				return nil, tidErr
			}
			resp.TableID = &tid
		}
		orders = append(orders, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := loadOrderItems(ctx, db, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func loadOrderItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			price_entry_id,
			quantity,
			unit_price,
			modifier_total,
			item_total,
			status
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			id            uuid.UUID
			productID     uuid.UUID
			priceEntryID  *uuid.UUID
			quantity      int
			unitPrice     decimal.Decimal
			modifierTotal decimal.Decimal
			itemTotal     decimal.Decimal
			status        string
		)
		if err = rows.Scan(
			&id, &productID, &priceEntryID, &quantity,
			&unitPrice, &modifierTotal, &itemTotal, &status,
		); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		prodID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		item := OrderItemResponse{
			ID:            itemID,
			ProductID:     prodID,
			Quantity:      quantity,
			UnitPrice:     unitPrice,
			ModifierTotal: modifierTotal,
			ItemTotal:     itemTotal,
			Status:        status,
		}
		if priceEntryID != nil {
			peID, idErr := kernel.UUIDFromBytes(priceEntryID[:])
			if idErr != nil {
				return nil, idErr
			}
			item.PriceEntryID = &peID
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
