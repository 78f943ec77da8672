package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"supplyline/internal/core/application/usecases/queries"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/notification"
	"supplyline/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OverdueOrdersJob periodically sweeps for orders stuck in a non-terminal
// status past the overdue threshold and notifies their shopkeeper and
// supplying company.
type OverdueOrdersJob struct {
	handler   queries.GetOverdueOrdersQueryHandler
	publisher ports.NotificationPublisher
	spec      string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOverdueOrdersJob creates the overdue sweep. spec is a standard cron
// expression controlling how often the sweep runs.
func NewOverdueOrdersJob(
	handler queries.GetOverdueOrdersQueryHandler,
	publisher ports.NotificationPublisher,
	spec string,
	logger *slog.Logger,
) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		handler:   handler,
		publisher: publisher,
		spec:      spec,
		cron:      cron.New(),
		logger:    logger.With("component", "overdue_orders_job"),
	}
}

// Start schedules the sweep.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "overdue sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "overdue orders job started", "spec", j.spec)
	return nil
}

// Stop stops the sweep.
func (j *OverdueOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "overdue orders job stopped")
}

// Run executes one sweep. Notification failures are logged per order; one
// failed publish does not stop the rest of the sweep.
func (j *OverdueOrdersJob) Run(ctx context.Context) error {
	query := queries.NewGetOverdueOrdersQuery(time.Now().UTC())

	rows, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	j.logger.InfoContext(ctx, "overdue orders found", "count", len(rows))

	for _, row := range rows {
		days := int(row.Age.Hours() / 24)
		message := fmt.Sprintf("Order %s has been in status %s for %d days",
			row.Number, row.Status, days)
		orderID := row.ID

		for _, recipientID := range []kernel.UUID{row.ShopkeeperID, row.CompanyID} {
			n, nErr := notification.New(recipientID, notification.TypeOrderOverdue,
				"Order overdue", message, notification.PriorityHigh, &orderID, nil)
			if nErr != nil {
				j.logger.ErrorContext(ctx, "overdue notification invalid",
					"order", row.Number, "error", nErr)
				continue
			}
			if pubErr := j.publisher.Publish(ctx, n); pubErr != nil {
				j.logger.ErrorContext(ctx, "overdue notification failed",
					"order", row.Number, "error", pubErr)
			}
		}
	}

	return nil
}
