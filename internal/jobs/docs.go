// Package jobs provides scheduled background tasks for the rental system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the rental service.
//
// # Available Jobs
//
// 1. OverdueSweepJob - Runs hourly to report approved orders whose rental
// window has ended without the vehicle being returned
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getOverdueOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "0 * * * *", running at the top of
// every hour. The sweep is read-only and never mutates orders: late fees
// are assessed at close time by the order aggregate itself.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick. Failed job starts
// will stop any already running jobs.
package jobs
