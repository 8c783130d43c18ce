package services

import (
	"errors"
	"fmt"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/pricing"
	"tableside/internal/pkg/errs"
)

// ErrNoEntriesToPrice is returned when PriceItems is called with no lines.
var ErrNoEntriesToPrice = errors.New("no lines to price")

// PricedLine pairs an order line request with the ledger entry resolved for
// it. The entry is the one active at pricing time; the application layer
// resolves it via the ledger's current-price or point-in-time query.
type PricedLine struct {
	// Entry is the ledger entry the unit price is taken from.
	Entry *pricing.PriceEntry

	// Quantity is the number of units ordered.
	Quantity int

	// ModifierTotal is the signed sum of option modifiers for the line.
	ModifierTotal kernel.Money
}

// OrderPricer is a domain service that builds frozen order items from
// ledger-resolved prices.
//
// Business rules:
//   - Every line must carry a valid ledger entry
//   - The entry's product becomes the item's product; the entry's price
//     becomes the frozen unit price
//   - The item records the entry's identifier so the charged price stays
//     reconstructible regardless of later ledger writes
//
// The pricer never reads a product's denormalized current-price field.
type OrderPricer struct{}

// NewOrderPricer creates a new OrderPricer instance.
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// PriceItems converts priced lines into order items with frozen totals.
// Returns an error if any line's entry is invalid or any quantity or
// currency fails item validation; no partial result is returned.
func (OrderPricer) PriceItems(lines []PricedLine) ([]*order.Item, error) {
	if len(lines) == 0 {
		return nil, ErrNoEntriesToPrice
	}

	items := make([]*order.Item, 0, len(lines))
	for i, line := range lines {
		if err := line.Entry.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("line %d", i), err)
		}

		entryID := line.Entry.ID()
		item, err := order.NewItem(
			kernel.NewUUID(),
			line.Entry.ProductID(),
			&entryID,
			line.Quantity,
			line.Entry.Price(),
			line.ModifierTotal,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
