// Package pricerepo persists the append-only price ledger.
// The repository exposes no update or delete operations, and the table
// carries a trigger that rejects UPDATE and DELETE at the database level,
// so ledger rows cannot be rewritten by any code path.
package pricerepo

import (
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceEntryDTO represents one persisted ledger row.
type PriceEntryDTO struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID        `gorm:"type:uuid;index:idx_price_ledger_org_product"`
	ProductID      uuid.UUID        `gorm:"type:uuid;index:idx_price_ledger_org_product"`
	Price          decimal.Decimal  `gorm:"type:numeric(12,2)"`
	PreviousPrice  *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Currency       string           `gorm:"type:varchar(3)"`
	Reason         string           `gorm:"type:varchar(20)"`
	Notes          *string          `gorm:"type:text"`
	EffectiveFrom  time.Time        `gorm:"index"`
	CreatedBy      *uuid.UUID       `gorm:"type:uuid"`
	CreatedAt      time.Time
}

// TableName specifies the database table name for ledger entries.
func (PriceEntryDTO) TableName() string {
	return "price_ledger"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *pricing.PriceEntry) PriceEntryDTO {
	var previousPrice *decimal.Decimal
	if prev := entry.PreviousPrice(); prev != nil {
		amount := prev.Amount()
		previousPrice = &amount
	}

	var createdBy *uuid.UUID
	if by := entry.CreatedBy(); by != nil {
		raw := by.Bytes()
		createdBy = &raw
	}

	return PriceEntryDTO{
		ID:             entry.ID().Bytes(),
		OrganizationID: entry.OrganizationID().Bytes(),
		ProductID:      entry.ProductID().Bytes(),
		Price:          entry.Price().Amount(),
		PreviousPrice:  previousPrice,
		Currency:       entry.Price().Currency(),
		Reason:         entry.Reason().String(),
		Notes:          entry.Notes(),
		EffectiveFrom:  entry.EffectiveFrom(),
		CreatedBy:      createdBy,
		CreatedAt:      entry.CreatedAt(),
	}
}

// toDomain converts a database DTO to a ledger entry.
func toDomain(dto PriceEntryDTO) (*pricing.PriceEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price, dto.Currency)
	if err != nil {
		return nil, err
	}

	var previousPrice *kernel.Money
	if dto.PreviousPrice != nil {
		prev, prevErr := kernel.NewMoney(*dto.PreviousPrice, dto.Currency)
		if prevErr != nil {
			return nil, prevErr
		}
		previousPrice = &prev
	}

	reason, err := pricing.ChangeReasonFromString(dto.Reason)
	if err != nil {
		return nil, err
	}

	var createdBy *kernel.UUID
	if dto.CreatedBy != nil {
		by, byErr := kernel.UUIDFromBytes((*dto.CreatedBy)[:])
		if byErr != nil {
			return nil, byErr
		}
		createdBy = &by
	}

	return pricing.RestorePriceEntry(
		id, organizationID, productID, price, previousPrice,
		reason, dto.Notes, dto.EffectiveFrom, createdBy, dto.CreatedAt)
}
