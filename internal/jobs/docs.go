// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// The only job today is CatalogRefreshJob, which re-reads the Excel price
// list on a configurable schedule so that product additions and price
// changes become visible without a restart.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(catalog, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Refresh failures are logged and the previous catalog snapshot stays in
// use, so a transiently broken or half-written workbook never takes the
// service down.
package jobs
