package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand represents a request to move a run one step forward
// along the happy path. Drivers tap through their runs with this command.
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actorID    kernel.UUID
	actorName  string
	note       string

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryCommand creates a command to advance a run one stage.
// The note is free-form and may be empty.
func NewAdvanceDeliveryCommand(
	deliveryID kernel.UUID,
	actorID kernel.UUID,
	actorName string,
	note string,
) (AdvanceDeliveryCommand, error) {
	cmd := AdvanceDeliveryCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setActorID(actorID),
		cmd.setActorName(actorName),
	); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the run being advanced.
func (c AdvanceDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// ActorID returns the account triggering the step.
func (c AdvanceDeliveryCommand) ActorID() kernel.UUID { return c.actorID }

// ActorName returns the display name written to the run's status log.
func (c AdvanceDeliveryCommand) ActorName() string { return c.actorName }

// Note returns the optional free-form note attached to the step.
func (c AdvanceDeliveryCommand) Note() string { return c.note }

func (c *AdvanceDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *AdvanceDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *AdvanceDeliveryCommand) setActorName(actorName string) error {
	if actorName == "" {
		return errs.NewValueIsRequiredError("actorName")
	}
	c.actorName = actorName
	return nil
}
