package jobs

import (
	"context"
	"log/slog"

	"procurement/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryStampJob periodically backfills delivery timestamps for orders that
// reached chef_checking without one. Runs every 5 seconds.
type DeliveryStampJob struct {
	handler commands.StampDeliveryCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryStampJob creates a new job for stamping deliveries.
// Uses StampDeliveryCommandHandler to process the backfill pass.
func NewDeliveryStampJob(handler commands.StampDeliveryCommandHandler, logger *slog.Logger) *DeliveryStampJob {
	return &DeliveryStampJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_stamp_job"),
	}
}

// Start begins the delivery stamp job to run every 5 seconds.
func (j *DeliveryStampJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewStampDeliveryCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery stamp job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery stamp job started (running every 5 seconds)")
	return nil
}

// Stop stops the delivery stamp job.
func (j *DeliveryStampJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery stamp job stopped")
}
