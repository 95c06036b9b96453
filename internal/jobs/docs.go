// Package jobs provides scheduled background tasks of the warehouse service.
//
// The only job is SyncJob: it imports the catalog and then the orders of
// the external shop on a cron schedule using github.com/robfig/cron/v3.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(syncHandler, "*/15 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule is a standard five-field cron expression or a descriptor
// such as "@every 15m". An empty schedule disables the job. A run that is
// still in progress when the next one is due causes that tick to be
// skipped.
//
// # Error Handling
//
// A missing shop configuration is logged once per run as a warning; every
// other failure is logged as an error. Failures never stop the schedule.
package jobs
