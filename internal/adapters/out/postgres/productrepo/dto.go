// Package productrepo persists product aggregates, including the
// denormalized current-price projection maintained from the price ledger.
package productrepo

import (
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
// CurrentPrice mirrors the head of the price ledger for read performance;
// the ledger stays the source of truth.
type ProductDTO struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID        `gorm:"type:uuid;index"`
	CategoryID     *uuid.UUID       `gorm:"type:uuid"`
	Name           string           `gorm:"type:varchar(255)"`
	Description    *string          `gorm:"type:text"`
	CurrentPrice   *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Currency       *string          `gorm:"type:varchar(3)"`
	Active         bool
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	var categoryID *uuid.UUID
	if id := aggregate.CategoryID(); id != nil {
		raw := id.Bytes()
		categoryID = &raw
	}

	var currentPrice *decimal.Decimal
	var currency *string
	if price := aggregate.CurrentPrice(); price != nil {
		amount := price.Amount()
		cur := price.Currency()
		currentPrice = &amount
		currency = &cur
	}

	return ProductDTO{
		ID:             aggregate.ID().Bytes(),
		OrganizationID: aggregate.OrganizationID().Bytes(),
		CategoryID:     categoryID,
		Name:           aggregate.Name(),
		Description:    aggregate.Description(),
		CurrentPrice:   currentPrice,
		Currency:       currency,
		Active:         aggregate.Active(),
	}
}

// toDomain converts a database DTO to a product aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cID, catErr := kernel.UUIDFromBytes((*dto.CategoryID)[:])
		if catErr != nil {
			return nil, catErr
		}
		categoryID = &cID
	}

	var currentPrice *kernel.Money
	if dto.CurrentPrice != nil && dto.Currency != nil {
		price, priceErr := kernel.NewMoney(*dto.CurrentPrice, *dto.Currency)
		if priceErr != nil {
			return nil, priceErr
		}
		currentPrice = &price
	}

	return product.RestoreProduct(
		id, organizationID, categoryID, dto.Name, dto.Description, currentPrice, dto.Active)
}
