// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path does not perform.
//
// # Available Jobs
//
// 1. KitchenLoadJob - Runs every minute to recount orders in COOKING per
// tenant and refresh each kitchen's current load figure.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileLoadHandler, logger)
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
// The load job uses the cron expression "* * * * *" (every minute). The
// figure is advisory, so a minute of staleness is acceptable and keeps the
// recount query cheap.
//
// # Error Handling
//
// Reconciliation failures are logged and retried on the next tick; the job
// never aborts the schedule.
package jobs
