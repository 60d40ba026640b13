package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrUpdateCategoryCommandIsNotConstructed = errors.New(
	"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
)

// UpdateCategoryCommand represents an admin request to change a category's
// naming, rates or availability in the catalogue. Rate changes only affect
// future quotes; existing bookings keep their priced snapshot.
type UpdateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID  kernel.UUID
	name        string
	class       string
	dailyRate   kernel.Money
	deposit     kernel.Money
	deliveryFee kernel.Money
	active      bool
	actorID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateCategoryCommand creates a command to update a category.
func NewUpdateCategoryCommand(
	categoryID kernel.UUID,
	name string,
	class string,
	dailyRate kernel.Money,
	deposit kernel.Money,
	deliveryFee kernel.Money,
	active bool,
	actorID kernel.UUID,
) (UpdateCategoryCommand, error) {
	cmd := UpdateCategoryCommand{
		dailyRate:   dailyRate,
		deposit:     deposit,
		deliveryFee: deliveryFee,
		active:      active,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCategoryID(categoryID),
		cmd.setName(name),
		cmd.setClass(class),
		cmd.setActorID(actorID),
	); err != nil {
		return UpdateCategoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

// CategoryID returns the category being updated.
func (c UpdateCategoryCommand) CategoryID() kernel.UUID { return c.categoryID }

// Name returns the new display name.
func (c UpdateCategoryCommand) Name() string { return c.name }

// Class returns the new class label.
func (c UpdateCategoryCommand) Class() string { return c.class }

// DailyRate returns the new price per billed rental day.
func (c UpdateCategoryCommand) DailyRate() kernel.Money { return c.dailyRate }

// Deposit returns the new security deposit.
func (c UpdateCategoryCommand) Deposit() kernel.Money { return c.deposit }

// DeliveryFee returns the new flat vehicle delivery fee.
func (c UpdateCategoryCommand) DeliveryFee() kernel.Money { return c.deliveryFee }

// Active returns whether customers can book the category.
func (c UpdateCategoryCommand) Active() bool { return c.active }

// ActorID returns the admin account updating the category.
func (c UpdateCategoryCommand) ActorID() kernel.UUID { return c.actorID }

func (c *UpdateCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	c.categoryID = categoryID
	return nil
}

func (c *UpdateCategoryCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateCategoryCommand) setClass(class string) error {
	if class == "" {
		return errs.NewValueIsRequiredError("class")
	}
	c.class = class
	return nil
}

func (c *UpdateCategoryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
