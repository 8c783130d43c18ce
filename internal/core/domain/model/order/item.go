package order

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// maxItemQuantity bounds a single line item. Larger orders are split.
const maxItemQuantity = 999

// Item is a line item within an order. Its pricing fields are frozen at the
// moment the order is placed: unitPrice comes from the price ledger entry
// active at pricing time (referenced by priceEntryID), and itemTotal is
// computed once as unitPrice*quantity + modifierTotal. Later price-ledger
// changes never alter these values.
type Item struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// productID references the priced product
	productID kernel.UUID

	// priceEntryID references the ledger entry active when the item was
	// priced (nil for items priced before the ledger existed)
	priceEntryID *kernel.UUID

	// quantity is the number of units ordered
	quantity int

	// unitPrice is the ledger price frozen at order time
	unitPrice kernel.Money

	// modifierTotal is the signed sum of option modifiers (extras, discounts)
	modifierTotal kernel.Money

	// itemTotal is unitPrice*quantity + modifierTotal, frozen at order time
	itemTotal kernel.Money

	// status tracks the item through the same enumeration as the order
	status Status

	isConstructed bool
}

// NewItem creates a line item, computing and freezing its total.
//
// Parameters:
//   - id: Unique identifier for the line item
//   - productID: The priced product
//   - priceEntryID: The ledger entry the unit price was resolved from (may be nil)
//   - quantity: Number of units, between 1 and 999
//   - unitPrice: Ledger price at pricing time; must not be negative
//   - modifierTotal: Signed modifier sum in the same currency as unitPrice
//
// The item starts in Pending status alongside its order.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	priceEntryID *kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	modifierTotal kernel.Money,
) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		unitPrice.Validate(),
		modifierTotal.Validate(),
	); err != nil {
		return nil, err
	}

	if priceEntryID != nil {
		if err := priceEntryID.Validate(); err != nil {
			return nil, err
		}
	}

	if quantity < 1 || quantity > maxItemQuantity {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}

	if unitPrice.IsNegative() {
		return nil, errs.NewValueIsInvalidError("unit price must not be negative")
	}

	itemTotal, err := unitPrice.MulInt(quantity).Add(modifierTotal)
	if err != nil {
		return nil, err
	}

	return &Item{
		id:            id,
		productID:     productID,
		priceEntryID:  priceEntryID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		modifierTotal: modifierTotal,
		itemTotal:     itemTotal,
		status:        Pending,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a line item from persistence. The stored totals
// are taken as-is: they were frozen at order time and are never recomputed.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	priceEntryID *kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	modifierTotal kernel.Money,
	itemTotal kernel.Money,
	status Status,
) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		unitPrice.Validate(),
		modifierTotal.Validate(),
		itemTotal.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Item{
		id:            id,
		productID:     productID,
		priceEntryID:  priceEntryID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		modifierTotal: modifierTotal,
		itemTotal:     itemTotal,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the priced product.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// PriceEntryID returns the ledger entry the unit price was resolved from.
// Returns nil when no ledger entry reference was recorded.
func (i *Item) PriceEntryID() *kernel.UUID {
	return i.priceEntryID
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the frozen per-unit price.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// ModifierTotal returns the frozen signed modifier sum.
func (i *Item) ModifierTotal() kernel.Money {
	return i.modifierTotal
}

// ItemTotal returns the frozen line total.
func (i *Item) ItemTotal() kernel.Money {
	return i.itemTotal
}

// Status returns the current status of the line item.
func (i *Item) Status() Status {
	return i.status
}

// TransitionTo moves the item to the target status, enforcing the shared
// transition table. Pricing fields are unaffected.
func (i *Item) TransitionTo(target Status) error {
	newStatus, err := i.status.TransitionTo(target)
	if err != nil {
		return err
	}

	i.status = newStatus
	return nil
}
