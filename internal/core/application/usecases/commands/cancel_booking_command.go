package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrCancelBookingCommandIsNotConstructed = errors.New(
	"CancelBookingCommand must be created via NewCancelBookingCommand constructor",
)

// CancelBookingCommand represents a request to cancel a booking. The
// cancellation fee is computed server-side from the policy tiers.
type CancelBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	actorID   kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewCancelBookingCommand creates a command to cancel a booking.
// The reason is free-form and may be empty.
func NewCancelBookingCommand(bookingID kernel.UUID, actorID kernel.UUID, reason string) (CancelBookingCommand, error) {
	cmd := CancelBookingCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setActorID(actorID),
	); err != nil {
		return CancelBookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelBookingCommand) Validate() error {
	return c.guard.Validate(ErrCancelBookingCommandIsNotConstructed)
}

// BookingID returns the booking being cancelled.
func (c CancelBookingCommand) BookingID() kernel.UUID { return c.bookingID }

// ActorID returns the account requesting the cancellation.
func (c CancelBookingCommand) ActorID() kernel.UUID { return c.actorID }

// Reason returns the free-form cancellation reason, possibly empty.
func (c CancelBookingCommand) Reason() string { return c.reason }

func (c *CancelBookingCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *CancelBookingCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
