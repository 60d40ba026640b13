package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartSweepJob periodically marks idle carts as abandoned and expires carts
// that have been abandoned for too long.
type CartSweepJob struct {
	handler     commands.SweepIdleCartsCommandHandler
	abandonIdle time.Duration
	expireAfter time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewCartSweepJob creates the sweep job. The thresholds come from
// configuration so operators can tune how aggressively carts are reclaimed.
func NewCartSweepJob(
	handler commands.SweepIdleCartsCommandHandler,
	abandonIdle time.Duration,
	expireAfter time.Duration,
	logger *slog.Logger,
) *CartSweepJob {
	return &CartSweepJob{
		handler:     handler,
		abandonIdle: abandonIdle,
		expireAfter: expireAfter,
		cron:        cron.New(),
		logger:      logger.With("component", "cart_sweep_job"),
	}
}

// Start schedules the sweep to run every minute.
func (j *CartSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewSweepIdleCartsCommand(j.abandonIdle, j.expireAfter)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Cart sweep command rejected", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Cart sweep job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart sweep job started (running every minute)")
	return nil
}

// Stop stops the sweep job.
func (j *CartSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart sweep job stopped")
}
