package http

import (
	"time"

	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/pricing"
	"tableside/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest is the body of POST /api/v1/products.
// Monetary amounts travel as decimal strings to avoid float rounding.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
	Price       string  `json:"price"`
	Currency    string  `json:"currency"`
}

// RecordPriceChangeRequest is the body of POST /api/v1/products/:productID/prices.
// EffectiveFrom defaults to the current time when omitted.
type RecordPriceChangeRequest struct {
	Price         string     `json:"price"`
	Currency      string     `json:"currency"`
	Reason        string     `json:"reason"`
	Notes         *string    `json:"notes,omitempty"`
	EffectiveFrom *time.Time `json:"effective_from,omitempty"`
	CreatedBy     *string    `json:"created_by,omitempty"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
// TableID is omitted for takeaway orders. PricedAt, when set, prices the
// lines as of that moment instead of the current ledger head.
type PlaceOrderRequest struct {
	TableID  *string                 `json:"table_id,omitempty"`
	Currency string                  `json:"currency"`
	PricedAt *time.Time              `json:"priced_at,omitempty"`
	Lines    []PlaceOrderLineRequest `json:"lines"`
}

// PlaceOrderLineRequest is one line of a PlaceOrderRequest.
// ModifierTotal defaults to zero when omitted.
type PlaceOrderLineRequest struct {
	ProductID     string  `json:"product_id"`
	Quantity      int     `json:"quantity"`
	ModifierTotal *string `json:"modifier_total,omitempty"`
}

// ChangeOrderStatusRequest is the body of PUT /api/v1/orders/:orderID/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// SetOrderPaymentStatusRequest is the body of
// PUT /api/v1/orders/:orderID/payment-status.
type SetOrderPaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

// OrderModel is the wire representation of one order.
type OrderModel struct {
	ID            uuid.UUID        `json:"id"`
	TableID       *uuid.UUID       `json:"table_id,omitempty"`
	Status        string           `json:"status"`
	PaymentStatus string           `json:"payment_status"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	Currency      string           `json:"currency"`
	PlacedAt      time.Time        `json:"placed_at"`
	Items         []OrderItemModel `json:"items"`
}

// OrderItemModel is the wire representation of one order line. The pricing
// fields reflect what was frozen at placement time.
type OrderItemModel struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     uuid.UUID       `json:"product_id"`
	PriceEntryID  *uuid.UUID      `json:"price_entry_id,omitempty"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	ModifierTotal decimal.Decimal `json:"modifier_total"`
	ItemTotal     decimal.Decimal `json:"item_total"`
	Status        string          `json:"status"`
}

// PriceEntryModel is the wire representation of one price-ledger entry.
type PriceEntryModel struct {
	ID            uuid.UUID        `json:"id"`
	ProductID     uuid.UUID        `json:"product_id"`
	Price         decimal.Decimal  `json:"price"`
	PreviousPrice *decimal.Decimal `json:"previous_price,omitempty"`
	Currency      string           `json:"currency"`
	Reason        string           `json:"reason"`
	Notes         *string          `json:"notes,omitempty"`
	EffectiveFrom time.Time        `json:"effective_from"`
	CreatedBy     *uuid.UUID       `json:"created_by,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// PriceChangeStatsModel is the wire representation of aggregated
// price-change statistics over a time range.
type PriceChangeStatsModel struct {
	TotalChanges            int              `json:"total_changes"`
	Increases               int              `json:"increases"`
	Decreases               int              `json:"decreases"`
	Promotions              int              `json:"promotions"`
	Corrections             int              `json:"corrections"`
	AverageChangePercentage *decimal.Decimal `json:"average_change_percentage,omitempty"`
}

func toOrderModel(r queries.OrderResponse) OrderModel {
	items := make([]OrderItemModel, len(r.Items))
	for i, item := range r.Items {
		items[i] = OrderItemModel{
			ID:            item.ID.Bytes(),
			ProductID:     item.ProductID.Bytes(),
			PriceEntryID:  optionalUUID(item.PriceEntryID),
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			ModifierTotal: item.ModifierTotal,
			ItemTotal:     item.ItemTotal,
			Status:        item.Status,
		}
	}

	return OrderModel{
		ID:            r.ID.Bytes(),
		TableID:       optionalUUID(r.TableID),
		Status:        r.Status,
		PaymentStatus: r.PaymentStatus,
		TotalAmount:   r.TotalAmount,
		Currency:      r.Currency,
		PlacedAt:      r.PlacedAt,
		Items:         items,
	}
}

func toOrderModels(rs []queries.OrderResponse) []OrderModel {
	models := make([]OrderModel, len(rs))
	for i, r := range rs {
		models[i] = toOrderModel(r)
	}
	return models
}

func toPriceEntryModel(r queries.PriceEntryResponse) PriceEntryModel {
	return PriceEntryModel{
		ID:            r.ID.Bytes(),
		ProductID:     r.ProductID.Bytes(),
		Price:         r.Price,
		PreviousPrice: r.PreviousPrice,
		Currency:      r.Currency,
		Reason:        r.Reason,
		Notes:         r.Notes,
		EffectiveFrom: r.EffectiveFrom,
		CreatedBy:     optionalUUID(r.CreatedBy),
		CreatedAt:     r.CreatedAt,
	}
}

func toPriceEntryModels(rs []queries.PriceEntryResponse) []PriceEntryModel {
	models := make([]PriceEntryModel, len(rs))
	for i, r := range rs {
		models[i] = toPriceEntryModel(r)
	}
	return models
}

func toPriceChangeStatsModel(s pricing.ChangeStats) PriceChangeStatsModel {
	return PriceChangeStatsModel{
		TotalChanges:            s.TotalChanges,
		Increases:               s.Increases,
		Decreases:               s.Decreases,
		Promotions:              s.Promotions,
		Corrections:             s.Corrections,
		AverageChangePercentage: s.AverageChangePercentage,
	}
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := id.Bytes()
	return &v
}

// parseUUID wraps kernel UUID parsing so a malformed identifier surfaces as
// a validation error rather than an unclassified one.
func parseUUID(paramName, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

func parseOptionalUUID(paramName string, value *string) (*kernel.UUID, error) {
	if value == nil {
		return nil, nil
	}
	id, err := parseUUID(paramName, *value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseTime(paramName, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return t, nil
}

func parseOptionalTime(paramName, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseTime(paramName, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
