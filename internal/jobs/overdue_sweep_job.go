package jobs

import (
	"context"
	"log/slog"
	"time"

	"rental/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueSweepJob periodically reports approved orders whose rental window
// has ended without the vehicle being returned. The sweep is read-only:
// late fees are assessed when the order is actually closed.
type OverdueSweepJob struct {
	handler queries.GetOverdueOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueSweepJob creates a job that reports overdue rentals every hour.
func NewOverdueSweepJob(handler queries.GetOverdueOrdersQueryHandler, logger *slog.Logger) *OverdueSweepJob {
	return &OverdueSweepJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_sweep_job"),
	}
}

// Start begins the overdue sweep job to run at the top of every hour.
func (j *OverdueSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetOverdueOrdersQuery(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue sweep job failed to build query", "error", err)
			return
		}

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue sweep job failed", "error", err)
			return
		}

		if len(overdue) == 0 {
			return
		}

		j.logger.InfoContext(ctx, "Overdue rentals detected", "count", len(overdue))
		for _, item := range overdue {
			j.logger.WarnContext(ctx, "Rental is overdue",
				"orderID", item.ID.String(),
				"clientID", item.ClientID.String(),
				"vehicleID", item.VehicleID.String(),
				"endDate", item.EndDate,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue sweep job started (running hourly)")
	return nil
}

// Stop stops the overdue sweep job.
func (j *OverdueSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue sweep job stopped")
}
