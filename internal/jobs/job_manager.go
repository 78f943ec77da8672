package jobs

import (
	"fmt"
	"log/slog"

	"supplyline/internal/core/application/usecases/queries"
	"supplyline/internal/core/ports"
)

// JobManager coordinates the scheduled jobs in the application.
type JobManager struct {
	overdueOrdersJob *OverdueOrdersJob
}

// NewJobManager creates a job manager with all required jobs wired up.
func NewJobManager(
	overdueHandler queries.GetOverdueOrdersQueryHandler,
	publisher ports.NotificationPublisher,
	overdueSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueOrdersJob: NewOverdueOrdersJob(overdueHandler, publisher, overdueSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue orders job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueOrdersJob.Stop()
}
