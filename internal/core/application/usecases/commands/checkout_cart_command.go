package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrCheckoutCartCommandIsNotConstructed = errors.New(
	"CheckoutCartCommand must be created via NewCheckoutCartCommand constructor",
)

// CheckoutCartCommand represents a request to turn a cart into a paid booking.
// The booking ID is minted by the caller so the API can return it immediately.
type CheckoutCartCommand struct { //nolint:recvcheck //using for validation
	bookingID     kernel.UUID
	cartID        kernel.UUID
	customerID    kernel.UUID
	customerName  string
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewCheckoutCartCommand creates a command to check out a cart.
func NewCheckoutCartCommand(
	bookingID kernel.UUID,
	cartID kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	paymentMethod string,
) (CheckoutCartCommand, error) {
	cmd := CheckoutCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setCartID(cartID),
		cmd.setCustomerID(customerID),
		cmd.setCustomerName(customerName),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCartCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCartCommandIsNotConstructed)
}

// BookingID returns the identifier minted for the new booking.
func (c CheckoutCartCommand) BookingID() kernel.UUID { return c.bookingID }

// CartID returns the cart being checked out.
func (c CheckoutCartCommand) CartID() kernel.UUID { return c.cartID }

// CustomerID returns the paying customer's account ID.
func (c CheckoutCartCommand) CustomerID() kernel.UUID { return c.customerID }

// CustomerName returns the customer's display name used on documents.
func (c CheckoutCartCommand) CustomerName() string { return c.customerName }

// PaymentMethod returns the gateway token of the customer's payment method.
func (c CheckoutCartCommand) PaymentMethod() string { return c.paymentMethod }

func (c *CheckoutCartCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *CheckoutCartCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	c.cartID = cartID
	return nil
}

func (c *CheckoutCartCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CheckoutCartCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.customerName = customerName
	return nil
}

func (c *CheckoutCartCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	c.paymentMethod = paymentMethod
	return nil
}
