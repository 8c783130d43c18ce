// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their wire names so the rows stay readable and the
// query side can filter on them directly.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;index:idx_orders_org_status"`
	TableID        *uuid.UUID      `gorm:"type:uuid"`
	Status         string          `gorm:"type:varchar(20);index:idx_orders_org_status"`
	PaymentStatus  string          `gorm:"type:varchar(20)"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Currency       string          `gorm:"type:varchar(3)"`
	PlacedAt       time.Time
	Items          []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line. The pricing columns hold
// the values frozen at placement; they are written once and never updated.
type OrderItemDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID  `gorm:"type:uuid;index"`
	ProductID     uuid.UUID  `gorm:"type:uuid"`
	PriceEntryID  *uuid.UUID `gorm:"type:uuid"`
	Quantity      int
	UnitPrice     decimal.Decimal `gorm:"type:numeric(12,2)"`
	ModifierTotal decimal.Decimal `gorm:"type:numeric(12,2)"`
	ItemTotal     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status        string          `gorm:"type:varchar(20)"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var tableID *uuid.UUID
	if id := aggregate.TableID(); id != nil {
		raw := id.Bytes()
		tableID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID(), item))
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		OrganizationID: aggregate.OrganizationID().Bytes(),
		TableID:        tableID,
		Status:         aggregate.Status().String(),
		PaymentStatus:  aggregate.PaymentStatus().String(),
		TotalAmount:    aggregate.TotalAmount().Amount(),
		Currency:       aggregate.TotalAmount().Currency(),
		PlacedAt:       aggregate.PlacedAt(),
		Items:          items,
	}
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) OrderItemDTO {
	var priceEntryID *uuid.UUID
	if id := item.PriceEntryID(); id != nil {
		raw := id.Bytes()
		priceEntryID = &raw
	}

	return OrderItemDTO{
		ID:            item.ID().Bytes(),
		OrderID:       orderID.Bytes(),
		ProductID:     item.ProductID().Bytes(),
		PriceEntryID:  priceEntryID,
		Quantity:      item.Quantity(),
		UnitPrice:     item.UnitPrice().Amount(),
		ModifierTotal: item.ModifierTotal().Amount(),
		ItemTotal:     item.ItemTotal().Amount(),
		Status:        item.Status().String(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	var tableID *kernel.UUID
	if dto.TableID != nil {
		tID, tableErr := kernel.UUIDFromBytes((*dto.TableID)[:])
		if tableErr != nil {
			return nil, tableErr
		}
		tableID = &tID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount, dto.Currency)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO, dto.Currency)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, organizationID, tableID, items, status, paymentStatus, totalAmount, dto.PlacedAt)
}

func itemToDomain(dto OrderItemDTO, currency string) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var priceEntryID *kernel.UUID
	if dto.PriceEntryID != nil {
		peID, peErr := kernel.UUIDFromBytes((*dto.PriceEntryID)[:])
		if peErr != nil {
			return nil, peErr
		}
		priceEntryID = &peID
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice, currency)
	if err != nil {
		return nil, err
	}
	modifierTotal, err := kernel.NewMoney(dto.ModifierTotal, currency)
	if err != nil {
		return nil, err
	}
	itemTotal, err := kernel.NewMoney(dto.ItemTotal, currency)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		id, productID, priceEntryID, dto.Quantity,
		unitPrice, modifierTotal, itemTotal, status)
}
