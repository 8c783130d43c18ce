package commands

import (
	"errors"

	"tableside/internal/pkg/guard"
)

var ErrRefreshPriceProjectionsCommandIsNotConstructed = errors.New(
	"RefreshPriceProjectionsCommand must be created via NewRefreshPriceProjectionsCommand constructor",
)

// RefreshPriceProjectionsCommand triggers reconciliation of every product's
// denormalized current-price field against the head of its price ledger.
// The ledger is the source of truth; this batch operation only repairs
// drifted projections and is safe to run repeatedly.
type RefreshPriceProjectionsCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshPriceProjectionsCommand creates a command to reconcile price
// projections. This is a parameterless command that processes all products.
func NewRefreshPriceProjectionsCommand() RefreshPriceProjectionsCommand {
	return RefreshPriceProjectionsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshPriceProjectionsCommandIsNotConstructed if validation fails.
func (c *RefreshPriceProjectionsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshPriceProjectionsCommandIsNotConstructed)
}
