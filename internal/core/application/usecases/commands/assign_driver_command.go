package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to put a driver on a run. A nil
// driver ID asks the dispatcher to pick the least-loaded active driver.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	driverID   *kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to a run.
func NewAssignDriverCommand(
	deliveryID kernel.UUID,
	driverID *kernel.UUID,
	actorID kernel.UUID,
) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setDriverID(driverID),
		cmd.setActorID(actorID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// DeliveryID returns the run receiving a driver.
func (c AssignDriverCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// DriverID returns the explicitly chosen driver, nil for auto-dispatch.
func (c AssignDriverCommand) DriverID() *kernel.UUID { return c.driverID }

// ActorID returns the staff account performing the assignment.
func (c AssignDriverCommand) ActorID() kernel.UUID { return c.actorID }

func (c *AssignDriverCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *AssignDriverCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
