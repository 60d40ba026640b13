package commands

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var (
	ErrCreateCartCommandIsNotConstructed = errors.New(
		"CreateCartCommand must be created via NewCreateCartCommand constructor",
	)
	ErrCartContactIsRequired = errors.New("an email or a phone number is required")
	ErrPickupAddressRequired = errors.New("pickup address is required")
	ErrReturnAddressRequired = errors.New("return address is required")
)

// CreateCartCommand represents a request to start a checkout cart for a
// vehicle category over a rental period. The quote is priced server-side by
// the handler; the client never supplies amounts.
type CreateCartCommand struct { //nolint:recvcheck //using for validation
	cartID        kernel.UUID
	customerID    *kernel.UUID
	email         string
	phone         string
	categoryID    kernel.UUID
	start         time.Time
	end           time.Time
	pickupAddress string
	returnAddress string

	guard guard.ConstructorGuard
}

// NewCreateCartCommand creates a command to start a new cart.
// Validates identifiers, requires a contact channel and both addresses; the
// rental period itself is validated by the domain when the handler builds it.
func NewCreateCartCommand(
	cartID kernel.UUID,
	customerID *kernel.UUID,
	email string,
	phone string,
	categoryID kernel.UUID,
	start time.Time,
	end time.Time,
	pickupAddress string,
	returnAddress string,
) (CreateCartCommand, error) {
	cmd := CreateCartCommand{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setCustomerID(customerID),
		cmd.setContact(email, phone),
		cmd.setCategoryID(categoryID),
		cmd.setAddresses(pickupAddress, returnAddress),
	); err != nil {
		return CreateCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCartCommand) Validate() error {
	return c.guard.Validate(ErrCreateCartCommandIsNotConstructed)
}

// CartID returns the unique identifier for the new cart.
func (c CreateCartCommand) CartID() kernel.UUID { return c.cartID }

// CustomerID returns the owning customer account, nil for guest carts.
func (c CreateCartCommand) CustomerID() *kernel.UUID { return c.customerID }

// Email returns the contact email, possibly empty.
func (c CreateCartCommand) Email() string { return c.email }

// Phone returns the contact phone, possibly empty.
func (c CreateCartCommand) Phone() string { return c.phone }

// CategoryID returns the chosen vehicle category.
func (c CreateCartCommand) CategoryID() kernel.UUID { return c.categoryID }

// Start returns the requested rental start.
func (c CreateCartCommand) Start() time.Time { return c.start }

// End returns the requested rental end.
func (c CreateCartCommand) End() time.Time { return c.end }

// PickupAddress returns the handover street address.
func (c CreateCartCommand) PickupAddress() string { return c.pickupAddress }

// ReturnAddress returns the return pickup street address.
func (c CreateCartCommand) ReturnAddress() string { return c.returnAddress }

func (c *CreateCartCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}

func (c *CreateCartCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateCartCommand) setContact(email string, phone string) error {
	if email == "" && phone == "" {
		return ErrCartContactIsRequired
	}
	c.email = email
	c.phone = phone
	return nil
}

func (c *CreateCartCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	c.categoryID = categoryID
	return nil
}

func (c *CreateCartCommand) setAddresses(pickupAddress string, returnAddress string) error {
	if pickupAddress == "" {
		return ErrPickupAddressRequired
	}
	if returnAddress == "" {
		return ErrReturnAddressRequired
	}
	c.pickupAddress = pickupAddress
	c.returnAddress = returnAddress
	return nil
}
