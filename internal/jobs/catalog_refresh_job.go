package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// CatalogRefresher reloads a product catalog snapshot from its source.
type CatalogRefresher interface {
	Refresh() error
}

// CatalogRefreshJob re-reads the product catalog on a cron schedule.
type CatalogRefreshJob struct {
	refresher CatalogRefresher
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCatalogRefreshJob creates the refresh job. The schedule uses the
// six-field cron form with seconds, e.g. "0 */5 * * * *" for every five
// minutes.
func NewCatalogRefreshJob(refresher CatalogRefresher, schedule string, logger *slog.Logger) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		refresher: refresher,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "catalog_refresh_job"),
	}
}

// Start begins the periodic refresh.
func (j *CatalogRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if refreshErr := j.refresher.Refresh(); refreshErr != nil {
			// The previous snapshot stays in use.
			j.logger.ErrorContext(context.Background(), "Catalog refresh failed", "error", refreshErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the refresh job.
func (j *CatalogRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}
