package pricerepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/pricing"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPriceLedgerRepository implements PriceLedgerRepository using GORM.
type GormPriceLedgerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPriceLedgerRepository creates a new GORM price ledger repository.
func NewGormPriceLedgerRepository(db *gorm.DB, tracker aggregateTracker) *GormPriceLedgerRepository {
	return &GormPriceLedgerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append inserts a new ledger entry.
func (r *GormPriceLedgerRepository) Append(ctx context.Context, entry *pricing.PriceEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("price entry", entry.ID().String(), err)
		}
		return classifyWriteError("insert price entry", err)
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GetLatest retrieves the newest entry for the product.
func (r *GormPriceLedgerRepository) GetLatest(
	ctx context.Context,
	organizationID, productID kernel.UUID,
) (*pricing.PriceEntry, error) {
	if err := errors.Join(organizationID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	var dto PriceEntryDTO
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND product_id = ?", organizationID.Bytes(), productID.Bytes()).
		Order("effective_from DESC, created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("price entry for product", productID.String())
		}
		return nil, errs.NewDatabaseError("select latest price entry", err)
	}

	return toDomain(dto)
}

// GetAt retrieves the entry that was effective at the given moment: the
// newest entry whose effective-from timestamp does not exceed it.
func (r *GormPriceLedgerRepository) GetAt(
	ctx context.Context,
	organizationID, productID kernel.UUID,
	at time.Time,
) (*pricing.PriceEntry, error) {
	if err := errors.Join(organizationID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	var dto PriceEntryDTO
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND product_id = ? AND effective_from <= ?",
			organizationID.Bytes(), productID.Bytes(), at).
		Order("effective_from DESC, created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("price entry for product", productID.String())
		}
		return nil, errs.NewDatabaseError("select price entry at time", err)
	}

	return toDomain(dto)
}

// GetHistory retrieves the product's entries, newest first, narrowed by the
// filter.
func (r *GormPriceLedgerRepository) GetHistory(
	ctx context.Context,
	organizationID, productID kernel.UUID,
	filter ports.PriceHistoryFilter,
) ([]*pricing.PriceEntry, error) {
	if err := errors.Join(organizationID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Where("organization_id = ? AND product_id = ?", organizationID.Bytes(), productID.Bytes())

	if filter.From != nil {
		query = query.Where("effective_from >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("effective_from <= ?", *filter.To)
	}
	if filter.Reason != nil {
		query = query.Where("reason = ?", filter.Reason.String())
	}

	query = query.Order("effective_from DESC, created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var dtos []PriceEntryDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, errs.NewDatabaseError("select price history", err)
	}

	return toDomainSlice(dtos)
}

// GetInRange retrieves the entries effective within [from, to], oldest first.
func (r *GormPriceLedgerRepository) GetInRange(
	ctx context.Context,
	organizationID, productID kernel.UUID,
	from, to time.Time,
) ([]*pricing.PriceEntry, error) {
	if err := errors.Join(organizationID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	var dtos []PriceEntryDTO
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND product_id = ? AND effective_from >= ? AND effective_from <= ?",
			organizationID.Bytes(), productID.Bytes(), from, to).
		Order("effective_from, created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewDatabaseError("select price entries in range", err)
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []PriceEntryDTO) ([]*pricing.PriceEntry, error) {
	entries := make([]*pricing.PriceEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// classifyWriteError maps errors raised by the ledger's immutability trigger
// to ImmutableViolationError so callers can tell a rejected rewrite apart
// from an ordinary database failure.
func classifyWriteError(operation string, err error) error {
	if strings.Contains(err.Error(), "immutable") {
		return errs.NewImmutableViolationErrorWithCause("price_ledger", err)
	}
	return errs.NewDatabaseError(operation, err)
}
