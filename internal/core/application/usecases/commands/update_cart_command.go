package commands

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrUpdateCartCommandIsNotConstructed = errors.New(
	"UpdateCartCommand must be created via NewUpdateCartCommand constructor",
)

// UpdateCartCommand represents a request to change the rental details of an
// Active cart. The quote is repriced server-side by the handler.
type UpdateCartCommand struct { //nolint:recvcheck //using for validation
	cartID        kernel.UUID
	start         time.Time
	end           time.Time
	pickupAddress string
	returnAddress string

	guard guard.ConstructorGuard
}

// NewUpdateCartCommand creates a command to update an existing cart.
func NewUpdateCartCommand(
	cartID kernel.UUID,
	start time.Time,
	end time.Time,
	pickupAddress string,
	returnAddress string,
) (UpdateCartCommand, error) {
	cmd := UpdateCartCommand{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setAddresses(pickupAddress, returnAddress),
	); err != nil {
		return UpdateCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartCommandIsNotConstructed)
}

// CartID returns the cart being updated.
func (c UpdateCartCommand) CartID() kernel.UUID { return c.cartID }

// Start returns the requested rental start.
func (c UpdateCartCommand) Start() time.Time { return c.start }

// End returns the requested rental end.
func (c UpdateCartCommand) End() time.Time { return c.end }

// PickupAddress returns the handover street address.
func (c UpdateCartCommand) PickupAddress() string { return c.pickupAddress }

// ReturnAddress returns the return pickup street address.
func (c UpdateCartCommand) ReturnAddress() string { return c.returnAddress }

func (c *UpdateCartCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}

func (c *UpdateCartCommand) setAddresses(pickupAddress string, returnAddress string) error {
	if pickupAddress == "" {
		return ErrPickupAddressRequired
	}
	if returnAddress == "" {
		return ErrReturnAddressRequired
	}
	c.pickupAddress = pickupAddress
	c.returnAddress = returnAddress
	return nil
}
