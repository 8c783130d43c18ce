package postgres

import (
	"tableside/internal/adapters/out/postgres/orderrepo"
	"tableside/internal/adapters/out/postgres/pricerepo"
	"tableside/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// priceLedgerGuardSQL installs a trigger that rejects UPDATE and DELETE on
// the price ledger. The repository interface already exposes no mutation,
// but the trigger stops raw SQL and future code paths too.
const priceLedgerGuardSQL = `
CREATE OR REPLACE FUNCTION reject_price_ledger_mutation() RETURNS trigger AS $$
BEGIN
	RAISE EXCEPTION 'price_ledger rows are immutable';
END;
$$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS price_ledger_immutable ON price_ledger;
CREATE TRIGGER price_ledger_immutable
	BEFORE UPDATE OR DELETE ON price_ledger
	FOR EACH ROW EXECUTE FUNCTION reject_price_ledger_mutation();
`

// MigrateSchema creates or updates the database schema for all aggregates
// and installs the ledger immutability trigger.
func MigrateSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&productrepo.ProductDTO{},
		&pricerepo.PriceEntryDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	); err != nil {
		return err
	}

	return db.Exec(priceLedgerGuardSQL).Error
}
