package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrConfirmBookingCommandIsNotConstructed = errors.New(
	"ConfirmBookingCommand must be created via NewConfirmBookingCommand constructor",
)

// ConfirmBookingCommand represents a staff request to confirm a pending
// booking, assigning it a concrete vehicle unit.
type ConfirmBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmBookingCommand creates a command to confirm a booking.
func NewConfirmBookingCommand(bookingID kernel.UUID, actorID kernel.UUID) (ConfirmBookingCommand, error) {
	cmd := ConfirmBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setActorID(actorID),
	); err != nil {
		return ConfirmBookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmBookingCommand) Validate() error {
	return c.guard.Validate(ErrConfirmBookingCommandIsNotConstructed)
}

// BookingID returns the booking being confirmed.
func (c ConfirmBookingCommand) BookingID() kernel.UUID { return c.bookingID }

// ActorID returns the staff account performing the confirmation.
func (c ConfirmBookingCommand) ActorID() kernel.UUID { return c.actorID }

func (c *ConfirmBookingCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *ConfirmBookingCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
