package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrAddUnitCommandIsNotConstructed = errors.New(
	"AddUnitCommand must be created via NewAddUnitCommand constructor",
)

// AddUnitCommand represents an admin request to add a concrete vehicle to the
// fleet under an existing category.
type AddUnitCommand struct { //nolint:recvcheck //using for validation
	unitID     kernel.UUID
	categoryID kernel.UUID
	plate      string
	vin        string
	year       int
	odometerKm int
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddUnitCommand creates a command to add a fleet unit.
func NewAddUnitCommand(
	unitID kernel.UUID,
	categoryID kernel.UUID,
	plate string,
	vin string,
	year int,
	odometerKm int,
	actorID kernel.UUID,
) (AddUnitCommand, error) {
	cmd := AddUnitCommand{
		plate:      plate,
		vin:        vin,
		year:       year,
		odometerKm: odometerKm,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUnitID(unitID),
		cmd.setCategoryID(categoryID),
		cmd.setActorID(actorID),
	); err != nil {
		return AddUnitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddUnitCommand) Validate() error {
	return c.guard.Validate(ErrAddUnitCommandIsNotConstructed)
}

// UnitID returns the identifier minted for the new unit.
func (c AddUnitCommand) UnitID() kernel.UUID { return c.unitID }

// CategoryID returns the category the unit belongs to.
func (c AddUnitCommand) CategoryID() kernel.UUID { return c.categoryID }

// Plate returns the registration plate.
func (c AddUnitCommand) Plate() string { return c.plate }

// VIN returns the vehicle identification number.
func (c AddUnitCommand) VIN() string { return c.vin }

// Year returns the model year.
func (c AddUnitCommand) Year() int { return c.year }

// OdometerKm returns the odometer reading at fleet entry.
func (c AddUnitCommand) OdometerKm() int { return c.odometerKm }

// ActorID returns the admin account adding the unit.
func (c AddUnitCommand) ActorID() kernel.UUID { return c.actorID }

func (c *AddUnitCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *AddUnitCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	c.categoryID = categoryID
	return nil
}

func (c *AddUnitCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
