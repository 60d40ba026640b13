package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// pickupReminderWindow is how far ahead of the rental start the reminder SMS
// goes out.
const pickupReminderWindow = 24 * time.Hour

// PickupReminderJob sends reminder messages for bookings whose rental period
// starts within the reminder window.
type PickupReminderJob struct {
	handler commands.SendPickupRemindersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPickupReminderJob creates the reminder job.
func NewPickupReminderJob(handler commands.SendPickupRemindersCommandHandler, logger *slog.Logger) *PickupReminderJob {
	return &PickupReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pickup_reminder_job"),
	}
}

// Start schedules the reminder run at the top of every hour.
func (j *PickupReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewSendPickupRemindersCommand(pickupReminderWindow)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Pickup reminder command rejected", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Pickup reminder job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup reminder job started (running hourly)")
	return nil
}

// Stop stops the reminder job.
func (j *PickupReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pickup reminder job stopped")
}
