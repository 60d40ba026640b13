package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand represents an admin request to add a vehicle category
// to the catalogue.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID   kernel.UUID
	name         string
	class        string
	seats        int
	transmission vehicle.Transmission
	dailyRate    kernel.Money
	deposit      kernel.Money
	deliveryFee  kernel.Money
	actorID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a command to add a category.
func NewCreateCategoryCommand(
	categoryID kernel.UUID,
	name string,
	class string,
	seats int,
	transmission vehicle.Transmission,
	dailyRate kernel.Money,
	deposit kernel.Money,
	deliveryFee kernel.Money,
	actorID kernel.UUID,
) (CreateCategoryCommand, error) {
	cmd := CreateCategoryCommand{
		seats:        seats,
		transmission: transmission,
		dailyRate:    dailyRate,
		deposit:      deposit,
		deliveryFee:  deliveryFee,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCategoryID(categoryID),
		cmd.setName(name),
		cmd.setClass(class),
		cmd.setActorID(actorID),
	); err != nil {
		return CreateCategoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// CategoryID returns the identifier minted for the new category.
func (c CreateCategoryCommand) CategoryID() kernel.UUID { return c.categoryID }

// Name returns the category's display name.
func (c CreateCategoryCommand) Name() string { return c.name }

// Class returns the category's class label.
func (c CreateCategoryCommand) Class() string { return c.class }

// Seats returns the number of seats.
func (c CreateCategoryCommand) Seats() int { return c.seats }

// Transmission returns the gearbox kind.
func (c CreateCategoryCommand) Transmission() vehicle.Transmission { return c.transmission }

// DailyRate returns the price per billed rental day.
func (c CreateCategoryCommand) DailyRate() kernel.Money { return c.dailyRate }

// Deposit returns the security deposit held during the rental.
func (c CreateCategoryCommand) Deposit() kernel.Money { return c.deposit }

// DeliveryFee returns the flat vehicle delivery fee.
func (c CreateCategoryCommand) DeliveryFee() kernel.Money { return c.deliveryFee }

// ActorID returns the admin account creating the category.
func (c CreateCategoryCommand) ActorID() kernel.UUID { return c.actorID }

func (c *CreateCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	c.categoryID = categoryID
	return nil
}

func (c *CreateCategoryCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateCategoryCommand) setClass(class string) error {
	if class == "" {
		return errs.NewValueIsRequiredError("class")
	}
	c.class = class
	return nil
}

func (c *CreateCategoryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
