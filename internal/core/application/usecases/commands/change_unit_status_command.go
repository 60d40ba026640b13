package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrChangeUnitStatusCommandIsNotConstructed = errors.New(
	"ChangeUnitStatusCommand must be created via NewChangeUnitStatusCommand constructor",
)

// ChangeUnitStatusCommand represents an admin request to move a fleet unit to
// an operational status: into or out of maintenance, or out of the fleet.
// Reserved and Rented are driven by the booking lifecycle and cannot be set
// directly.
type ChangeUnitStatusCommand struct { //nolint:recvcheck //using for validation
	unitID  kernel.UUID
	to      vehicle.UnitStatus
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeUnitStatusCommand creates a command to change a unit's status.
func NewChangeUnitStatusCommand(
	unitID kernel.UUID,
	to vehicle.UnitStatus,
	actorID kernel.UUID,
) (ChangeUnitStatusCommand, error) {
	cmd := ChangeUnitStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUnitID(unitID),
		cmd.setTo(to),
		cmd.setActorID(actorID),
	); err != nil {
		return ChangeUnitStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeUnitStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeUnitStatusCommandIsNotConstructed)
}

// UnitID returns the unit whose status is being changed.
func (c ChangeUnitStatusCommand) UnitID() kernel.UUID { return c.unitID }

// To returns the target operational status.
func (c ChangeUnitStatusCommand) To() vehicle.UnitStatus { return c.to }

// ActorID returns the admin account changing the status.
func (c ChangeUnitStatusCommand) ActorID() kernel.UUID { return c.actorID }

func (c *ChangeUnitStatusCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *ChangeUnitStatusCommand) setTo(to vehicle.UnitStatus) error {
	if err := to.Validate(); err != nil {
		return err
	}
	c.to = to
	return nil
}

func (c *ChangeUnitStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
