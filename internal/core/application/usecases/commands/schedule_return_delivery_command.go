package commands

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrScheduleReturnDeliveryCommandIsNotConstructed = errors.New(
	"ScheduleReturnDeliveryCommand must be created via NewScheduleReturnDeliveryCommand constructor",
)

// ScheduleReturnDeliveryCommand represents a staff request to schedule the
// return pickup run for a booking. The run ID is minted by the caller.
type ScheduleReturnDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	bookingID   kernel.UUID
	scheduledAt time.Time
	actorID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewScheduleReturnDeliveryCommand creates a command to schedule a return run.
func NewScheduleReturnDeliveryCommand(
	deliveryID kernel.UUID,
	bookingID kernel.UUID,
	scheduledAt time.Time,
	actorID kernel.UUID,
) (ScheduleReturnDeliveryCommand, error) {
	cmd := ScheduleReturnDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setBookingID(bookingID),
		cmd.setScheduledAt(scheduledAt),
		cmd.setActorID(actorID),
	); err != nil {
		return ScheduleReturnDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleReturnDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrScheduleReturnDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier minted for the new run.
func (c ScheduleReturnDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// BookingID returns the booking the run belongs to.
func (c ScheduleReturnDeliveryCommand) BookingID() kernel.UUID { return c.bookingID }

// ScheduledAt returns when the pickup is supposed to happen.
func (c ScheduleReturnDeliveryCommand) ScheduledAt() time.Time { return c.scheduledAt }

// ActorID returns the staff account scheduling the run.
func (c ScheduleReturnDeliveryCommand) ActorID() kernel.UUID { return c.actorID }

func (c *ScheduleReturnDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *ScheduleReturnDeliveryCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *ScheduleReturnDeliveryCommand) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduledAt")
	}
	c.scheduledAt = scheduledAt
	return nil
}

func (c *ScheduleReturnDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
