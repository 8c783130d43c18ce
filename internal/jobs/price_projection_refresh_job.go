package jobs

import (
	"context"
	"log/slog"

	"tableside/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// priceProjectionRefreshSchedule runs the reconciliation every five minutes.
// Backdated ledger entries and skipped projection writes make the
// products.current_price column drift; this job converges it back to the
// ledger head.
const priceProjectionRefreshSchedule = "0 */5 * * * *"

// PriceProjectionRefreshJob manages the scheduled reconciliation of product
// price projections against the price ledger.
type PriceProjectionRefreshJob struct {
	handler commands.RefreshPriceProjectionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPriceProjectionRefreshJob creates a new job for refreshing price
// projections. Uses RefreshPriceProjectionsCommandHandler to reconcile every
// product's cached price with its ledger head.
func NewPriceProjectionRefreshJob(
	handler commands.RefreshPriceProjectionsCommandHandler,
	logger *slog.Logger,
) *PriceProjectionRefreshJob {
	return &PriceProjectionRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "price_projection_refresh_job"),
	}
}

// Start begins the price projection refresh job.
func (j *PriceProjectionRefreshJob) Start() error {
	_, err := j.cron.AddFunc(priceProjectionRefreshSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshPriceProjectionsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Price projection refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Price projection refresh job started (running every five minutes)")
	return nil
}

// Stop stops the price projection refresh job.
func (j *PriceProjectionRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Price projection refresh job stopped")
}
