package commands

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrSweepIdleCartsCommandIsNotConstructed = errors.New(
	"SweepIdleCartsCommand must be created via NewSweepIdleCartsCommand constructor",
)

// SweepIdleCartsCommand represents one pass of the cart abandonment sweep:
// Active carts idle past the abandon threshold are marked Abandoned and get a
// recovery nudge, Abandoned carts idle past the expiry threshold are expired
// for good.
type SweepIdleCartsCommand struct { //nolint:recvcheck //using for validation
	abandonAfter time.Duration
	expireAfter  time.Duration

	guard guard.ConstructorGuard
}

// NewSweepIdleCartsCommand creates a command to sweep idle carts.
func NewSweepIdleCartsCommand(abandonAfter time.Duration, expireAfter time.Duration) (SweepIdleCartsCommand, error) {
	cmd := SweepIdleCartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAbandonAfter(abandonAfter),
		cmd.setExpireAfter(expireAfter),
	); err != nil {
		return SweepIdleCartsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SweepIdleCartsCommand) Validate() error {
	return c.guard.Validate(ErrSweepIdleCartsCommandIsNotConstructed)
}

// AbandonAfter returns how long an Active cart may idle before abandonment.
func (c SweepIdleCartsCommand) AbandonAfter() time.Duration { return c.abandonAfter }

// ExpireAfter returns how long an Abandoned cart may idle before expiry.
func (c SweepIdleCartsCommand) ExpireAfter() time.Duration { return c.expireAfter }

func (c *SweepIdleCartsCommand) setAbandonAfter(abandonAfter time.Duration) error {
	if abandonAfter <= 0 {
		return errs.NewValueIsInvalidError("abandonAfter")
	}
	c.abandonAfter = abandonAfter
	return nil
}

func (c *SweepIdleCartsCommand) setExpireAfter(expireAfter time.Duration) error {
	if expireAfter <= 0 {
		return errs.NewValueIsInvalidError("expireAfter")
	}
	c.expireAfter = expireAfter
	return nil
}
