package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	catalogRefreshJob *CatalogRefreshJob
}

// NewJobManager creates a job manager wiring the catalog refresh job.
func NewJobManager(refresher CatalogRefresher, refreshSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		catalogRefreshJob: NewCatalogRefreshJob(refresher, refreshSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.catalogRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start catalog refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.catalogRefreshJob.Stop()
}
