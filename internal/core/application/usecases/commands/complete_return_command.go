package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrCompleteReturnCommandIsNotConstructed = errors.New(
	"CompleteReturnCommand must be created via NewCompleteReturnCommand constructor",
)

// DamageItem describes one damage found during the return inspection.
type DamageItem struct {
	Description string
	Severity    booking.Severity
	Charge      kernel.Money
	PhotoKeys   []string
}

// CompleteReturnCommand represents the staff settlement of a finished rental:
// the inspection result with any damages, the closing odometer reading, and
// the customer's name for the deposit receipt document.
type CompleteReturnCommand struct { //nolint:recvcheck //using for validation
	bookingID    kernel.UUID
	actorID      kernel.UUID
	customerName string
	odometerKm   int
	damages      []DamageItem

	guard guard.ConstructorGuard
}

// NewCompleteReturnCommand creates a command to settle a returned rental.
// Damages may be empty for a clean return.
func NewCompleteReturnCommand(
	bookingID kernel.UUID,
	actorID kernel.UUID,
	customerName string,
	odometerKm int,
	damages []DamageItem,
) (CompleteReturnCommand, error) {
	cmd := CompleteReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setActorID(actorID),
		cmd.setCustomerName(customerName),
		cmd.setOdometerKm(odometerKm),
		cmd.setDamages(damages),
	); err != nil {
		return CompleteReturnCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteReturnCommand) Validate() error {
	return c.guard.Validate(ErrCompleteReturnCommandIsNotConstructed)
}

// BookingID returns the booking being settled.
func (c CompleteReturnCommand) BookingID() kernel.UUID { return c.bookingID }

// ActorID returns the staff account performing the settlement.
func (c CompleteReturnCommand) ActorID() kernel.UUID { return c.actorID }

// CustomerName returns the customer's display name used on the receipt.
func (c CompleteReturnCommand) CustomerName() string { return c.customerName }

// OdometerKm returns the closing odometer reading.
func (c CompleteReturnCommand) OdometerKm() int { return c.odometerKm }

// Damages returns the damages found during the inspection.
func (c CompleteReturnCommand) Damages() []DamageItem { return c.damages }

func (c *CompleteReturnCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *CompleteReturnCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *CompleteReturnCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.customerName = customerName
	return nil
}

func (c *CompleteReturnCommand) setOdometerKm(odometerKm int) error {
	if odometerKm < 0 {
		return errs.NewValueIsInvalidError("odometerKm")
	}
	c.odometerKm = odometerKm
	return nil
}

func (c *CompleteReturnCommand) setDamages(damages []DamageItem) error {
	for _, damage := range damages {
		if damage.Description == "" {
			return errs.NewValueIsRequiredError("damage description")
		}
		if err := damage.Severity.Validate(); err != nil {
			return err
		}
		if err := damage.Charge.Validate(); err != nil {
			return err
		}
	}
	c.damages = damages
	return nil
}
