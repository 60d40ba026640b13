package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	cartSweepJob      *CartSweepJob
	pickupReminderJob *PickupReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	sweepHandler commands.SweepIdleCartsCommandHandler,
	reminderHandler commands.SendPickupRemindersCommandHandler,
	abandonIdle time.Duration,
	expireAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		cartSweepJob:      NewCartSweepJob(sweepHandler, abandonIdle, expireAfter, logger),
		pickupReminderJob: NewPickupReminderJob(reminderHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.cartSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start cart sweep job: %w", err)
	}

	if err := jm.pickupReminderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.cartSweepJob.Stop()
		return fmt.Errorf("failed to start pickup reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cartSweepJob.Stop()
	jm.pickupReminderJob.Stop()
}
