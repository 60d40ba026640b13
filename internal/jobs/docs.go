// Package jobs provides scheduled background tasks for the rental system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping required by the rental service.
//
// # Available Jobs
//
// 1. CartSweepJob - Runs every minute to abandon idle carts and expire long-abandoned ones
// 2. PickupReminderJob - Runs hourly to send SMS reminders for rentals starting soon
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepHandler, reminderHandler, abandonIdle, expireAfter, logger)
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
// The cart sweep uses the cron expression "* * * * *" (every minute) so idle
// carts release their hold on demand quickly. The pickup reminder uses
// "0 * * * *" (top of every hour), which is frequent enough for a 24 hour
// reminder window.
package jobs
