package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrNotifyCartRecoveryCommandIsNotConstructed = errors.New(
	"NotifyCartRecoveryCommand must be created via NewNotifyCartRecoveryCommand constructor",
)

// NotifyCartRecoveryCommand represents a back-office request to send the
// recovery nudge for one abandoned cart, outside the periodic sweep.
type NotifyCartRecoveryCommand struct { //nolint:recvcheck //using for validation
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

// NewNotifyCartRecoveryCommand creates a command to nudge one abandoned cart.
func NewNotifyCartRecoveryCommand(cartID kernel.UUID) (NotifyCartRecoveryCommand, error) {
	cmd := NotifyCartRecoveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCartID(cartID); err != nil {
		return NotifyCartRecoveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyCartRecoveryCommand) Validate() error {
	return c.guard.Validate(ErrNotifyCartRecoveryCommandIsNotConstructed)
}

// CartID returns the cart to nudge.
func (c NotifyCartRecoveryCommand) CartID() kernel.UUID { return c.cartID }

func (c *NotifyCartRecoveryCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}
