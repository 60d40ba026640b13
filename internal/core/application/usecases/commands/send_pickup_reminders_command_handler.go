package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/core/ports"
)

// SendPickupRemindersCommandHandler handles the periodic pickup reminder
// pass. Each run is reminded at most once: the sent marker is persisted on
// the run, so later passes inside the same window skip it.
type SendPickupRemindersCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewSendPickupRemindersCommandHandler creates a handler for the reminder pass.
func NewSendPickupRemindersCommandHandler(
	uowFactory DeliveryUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) SendPickupRemindersCommandHandler {
	return SendPickupRemindersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes one reminder pass.
func (h *SendPickupRemindersCommandHandler) Handle(ctx context.Context, cmd SendPickupRemindersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	horizon := now.Add(cmd.Window())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	openRuns, err := uow.DeliveryRepository().GetAllOpen(ctx)
	if err != nil {
		return err
	}

	for _, run := range openRuns {
		if run.Direction() != delivery.DirectionHandover || run.DriverID() == nil {
			continue
		}
		if run.RemindedAt() != nil {
			continue
		}
		if run.ScheduledAt().Before(now) || run.ScheduledAt().After(horizon) {
			continue
		}

		driver, driverErr := uow.DriverRepository().Get(ctx, *run.DriverID())
		if driverErr != nil {
			h.logger.Error("pickup reminder driver lookup failed",
				"deliveryId", run.ID().String(),
				"error", driverErr)
			continue
		}

		message := fmt.Sprintf("Upcoming handover at %s on %s, run %s",
			run.Address(), run.ScheduledAt().Format(time.RFC822), run.ID())
		if sendErr := h.notifier.SendSMS(ctx, driver.Phone(), message); sendErr != nil {
			h.logger.Error("pickup reminder SMS failed",
				"deliveryId", run.ID().String(),
				"driverId", driver.ID().String(),
				"error", sendErr)
			continue
		}

		run.MarkReminded()
		if err = uow.DeliveryRepository().Update(ctx, run); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
