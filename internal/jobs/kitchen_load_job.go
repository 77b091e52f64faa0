package jobs

import (
	"context"
	"log/slog"

	"resto/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// KitchenLoadJob keeps each kitchen's cooking-load counter in step with
// the orders table. The counter is denormalized and the request path never
// touches it, so this job is its only writer.
type KitchenLoadJob struct {
	handler commands.ReconcileKitchenLoadCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewKitchenLoadJob creates a new job for reconciling kitchen load.
// Uses ReconcileKitchenLoadCommandHandler to recount every minute.
func NewKitchenLoadJob(handler commands.ReconcileKitchenLoadCommandHandler, logger *slog.Logger) *KitchenLoadJob {
	return &KitchenLoadJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "kitchen_load_job"),
	}
}

// Start begins the kitchen load job to run every minute.
func (j *KitchenLoadJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewReconcileKitchenLoadCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Kitchen load command construction failed", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Kitchen load reconciliation failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen load job started (running every minute)")
	return nil
}

// Stop stops the kitchen load job.
func (j *KitchenLoadJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen load job stopped")
}
