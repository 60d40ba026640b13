package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrSetDeliveryStatusCommandIsNotConstructed = errors.New(
	"SetDeliveryStatusCommand must be created via NewSetDeliveryStatusCommand constructor",
)

// SetDeliveryStatusCommand represents a back-office request to move a run to
// an explicit stage. The state machine still rejects illegal jumps.
type SetDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	to         delivery.Status
	actorID    kernel.UUID
	actorName  string
	note       string

	guard guard.ConstructorGuard
}

// NewSetDeliveryStatusCommand creates a command to set a run's stage.
// The note is free-form and may be empty.
func NewSetDeliveryStatusCommand(
	deliveryID kernel.UUID,
	to delivery.Status,
	actorID kernel.UUID,
	actorName string,
	note string,
) (SetDeliveryStatusCommand, error) {
	cmd := SetDeliveryStatusCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setTo(to),
		cmd.setActorID(actorID),
		cmd.setActorName(actorName),
	); err != nil {
		return SetDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the run whose stage is being set.
func (c SetDeliveryStatusCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// To returns the requested stage.
func (c SetDeliveryStatusCommand) To() delivery.Status { return c.to }

// ActorID returns the account triggering the change.
func (c SetDeliveryStatusCommand) ActorID() kernel.UUID { return c.actorID }

// ActorName returns the display name written to the run's status log.
func (c SetDeliveryStatusCommand) ActorName() string { return c.actorName }

// Note returns the optional free-form note attached to the change.
func (c SetDeliveryStatusCommand) Note() string { return c.note }

func (c *SetDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *SetDeliveryStatusCommand) setTo(to delivery.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	c.to = to
	return nil
}

func (c *SetDeliveryStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *SetDeliveryStatusCommand) setActorName(actorName string) error {
	if actorName == "" {
		return errs.NewValueIsRequiredError("actorName")
	}
	c.actorName = actorName
	return nil
}
