package order

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoItems is returned when an order is created without line items.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")
)

// Order is the aggregate root for a placed restaurant order.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and organization
//   - Contains at least one line item
//   - totalAmount is the sum of item totals, computed at creation and never
//     recomputed retroactively
//   - Status transitions follow the table defined on Status
//   - Orders are never hard-deleted; cancellation is a terminal status
//
// After creation, the only permitted mutations are status transitions and
// payment-status updates.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// organizationID scopes the order to a tenant
	organizationID kernel.UUID

	// tableID references the restaurant table, if any (nil for takeaway)
	tableID *kernel.UUID

	// items are the frozen line items
	items []*Item

	// status is the current state in the order lifecycle
	status Status

	// paymentStatus tracks payment independently of the kitchen workflow
	paymentStatus PaymentStatus

	// totalAmount is the sum of item totals, frozen at creation
	totalAmount kernel.Money

	// placedAt records when the order was created
	placedAt time.Time

	isConstructed bool
}

// NewOrder creates an Order in Pending status with Unpaid payment status.
// The total amount is computed from the item totals once, here, and is never
// recomputed when prices change later.
//
// Parameters:
//   - id: Unique identifier for the order
//   - organizationID: Owning tenant
//   - tableID: Optional table reference (nil for takeaway orders)
//   - items: Line items priced from the ledger; must not be empty
//   - placedAt: Creation timestamp; must not be zero
func NewOrder(
	id kernel.UUID,
	organizationID kernel.UUID,
	tableID *kernel.UUID,
	items []*Item,
	placedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		organizationID.Validate(),
	); err != nil {
		return nil, err
	}

	if tableID != nil {
		if err := tableID.Validate(); err != nil {
			return nil, err
		}
	}

	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}

	if placedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("placedAt")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	total := items[0].ItemTotal()
	for _, item := range items[1:] {
		var err error
		total, err = total.Add(item.ItemTotal())
		if err != nil {
			return nil, err
		}
	}

	return &Order{
		id:             id,
		organizationID: organizationID,
		tableID:        tableID,
		items:          items,
		status:         Pending,
		paymentStatus:  Unpaid,
		totalAmount:    total,
		placedAt:       placedAt,
		isConstructed:  true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored status,
// payment status, and frozen total.
func RestoreOrder(
	id kernel.UUID,
	organizationID kernel.UUID,
	tableID *kernel.UUID,
	items []*Item,
	status Status,
	paymentStatus PaymentStatus,
	totalAmount kernel.Money,
	placedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		organizationID.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
		totalAmount.Validate(),
	); err != nil {
		return nil, err
	}

	if tableID != nil {
		if err := tableID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:             id,
		organizationID: organizationID,
		tableID:        tableID,
		items:          items,
		status:         status,
		paymentStatus:  paymentStatus,
		totalAmount:    totalAmount,
		placedAt:       placedAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrganizationID returns the owning tenant's identifier.
func (o *Order) OrganizationID() kernel.UUID {
	return o.organizationID
}

// TableID returns the referenced table, or nil for takeaway orders.
func (o *Order) TableID() *kernel.UUID {
	return o.tableID
}

// Items returns the order's line items.
func (o *Order) Items() []*Item {
	return o.items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// TotalAmount returns the total frozen at creation time.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// PlacedAt returns the creation timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// TransitionTo moves the order to the target status.
//
// The transition table on Status decides validity. On a disallowed move the
// order is left unchanged and the returned error classifies as
// validation_error, so callers can reject the write and report the violation.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order to the terminal Cancelled status.
// Valid only while the status allows cancellation (Pending through Ready).
func (o *Order) Cancel() error {
	return o.TransitionTo(Cancelled)
}

// SetPaymentStatus updates the payment status.
// Refunded is only reachable from Paid.
func (o *Order) SetPaymentStatus(target PaymentStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if target == Refunded && o.paymentStatus != Paid {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			errors.New("only paid orders can be refunded"))
	}

	o.paymentStatus = target
	return nil
}
