package commands

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrSendPickupRemindersCommandIsNotConstructed = errors.New(
	"SendPickupRemindersCommand must be created via NewSendPickupRemindersCommand constructor",
)

// SendPickupRemindersCommand represents one pass of the pickup reminder job:
// drivers with a handover run scheduled inside the window get a text.
type SendPickupRemindersCommand struct { //nolint:recvcheck //using for validation
	window time.Duration

	guard guard.ConstructorGuard
}

// NewSendPickupRemindersCommand creates a command to send pickup reminders.
func NewSendPickupRemindersCommand(window time.Duration) (SendPickupRemindersCommand, error) {
	cmd := SendPickupRemindersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setWindow(window); err != nil {
		return SendPickupRemindersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendPickupRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendPickupRemindersCommandIsNotConstructed)
}

// Window returns how far ahead the reminder looks.
func (c SendPickupRemindersCommand) Window() time.Duration { return c.window }

func (c *SendPickupRemindersCommand) setWindow(window time.Duration) error {
	if window <= 0 {
		return errs.NewValueIsInvalidError("window")
	}
	c.window = window
	return nil
}
