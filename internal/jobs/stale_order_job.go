package jobs

import (
	"context"
	"log/slog"
	"time"

	"waiter/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob watches for orders stuck in the kitchen. Runs every minute
// and logs a warning for each order that has been IN_PREPARATION longer than
// the configured threshold. Observation only, never mutates state.
type StaleOrderJob struct {
	handler   queries.GetAllOrdersQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleOrderJob creates a new job for flagging stale kitchen orders.
func NewStaleOrderJob(
	handler queries.GetAllOrdersQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale order job to run every minute.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		orders, err := j.handler.Handle(ctx, queries.NewGetAllOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order job failed", "error", err)
			return
		}

		now := time.Now().UTC()
		for _, o := range orders {
			if o.Status != "IN_PREPARATION" {
				continue
			}
			age := now.Sub(o.CreatedAt)
			if age < j.threshold {
				continue
			}
			j.logger.WarnContext(ctx, "Order is stuck in preparation",
				"order_id", o.ID.String(),
				"waiter", o.Waiter,
				"age", age.Round(time.Second).String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every minute)")
	return nil
}

// Stop stops the stale order job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
