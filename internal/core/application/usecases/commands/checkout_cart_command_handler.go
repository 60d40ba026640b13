package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/cart"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/deposit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"
	"github.com/mapsensemedia/betterrental/internal/core/ports"
)

// ErrNoVehicleAvailable indicates the category has no unit left for the
// requested period, so the checkout cannot proceed.
var ErrNoVehicleAvailable = errors.New("no vehicle of the requested category is available for the period")

// CheckoutCartCommandHandler handles the business logic for cart checkout.
//
// The payment gateway is called before the database transaction opens, so a
// card hold never sits inside an open transaction. If the writes fail after a
// successful charge, the handler refunds the charge best-effort. Document
// rendering, the confirmation SMS and the cache invalidation run after the
// commit and never fail the checkout.
type CheckoutCartCommandHandler struct {
	uowFactory CheckoutUoWFactory
	gateway    ports.PaymentGateway
	renderer   ports.DocumentRenderer
	documents  ports.DocumentStore
	notifier   ports.Notifier
	cache      ports.AvailabilityCache
	logger     *slog.Logger
}

// NewCheckoutCartCommandHandler creates a handler for checkout operations.
func NewCheckoutCartCommandHandler(
	uowFactory CheckoutUoWFactory,
	gateway ports.PaymentGateway,
	renderer ports.DocumentRenderer,
	documents ports.DocumentStore,
	notifier ports.Notifier,
	cache ports.AvailabilityCache,
	logger *slog.Logger,
) CheckoutCartCommandHandler {
	return CheckoutCartCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		renderer:   renderer,
		documents:  documents,
		notifier:   notifier,
		cache:      cache,
		logger:     logger,
	}
}

// Handle processes the checkout command.
func (h *CheckoutCartCommandHandler) Handle(ctx context.Context, cmd CheckoutCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	checkedOutCart, err := uow.CartRepository().Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	category, err := uow.CategoryRepository().Get(ctx, checkedOutCart.CategoryID())
	if err != nil {
		return err
	}

	if err = h.checkAvailability(ctx, uow, checkedOutCart); err != nil {
		return err
	}

	quote := checkedOutCart.Quote()
	chargeAmount, err := quote.Total().Add(quote.Deposit())
	if err != nil {
		return err
	}

	paymentRef, err := h.gateway.Charge(ctx, chargeAmount, cmd.PaymentMethod(),
		fmt.Sprintf("Car rental booking %s", cmd.BookingID()))
	if err != nil {
		return err
	}

	if err = h.persistCheckout(ctx, uow, cmd, checkedOutCart, paymentRef); err != nil {
		h.refundBestEffort(ctx, paymentRef, chargeAmount)
		return err
	}

	h.afterCheckout(ctx, cmd, checkedOutCart, category)
	return nil
}

// checkAvailability rejects the checkout when every unit of the category is
// already taken by an overlapping booking.
func (h *CheckoutCartCommandHandler) checkAvailability(
	ctx context.Context,
	uow CheckoutUoW,
	checkedOutCart *cart.Cart,
) error {
	overlapping, err := uow.BookingRepository().GetOverlapping(ctx, checkedOutCart.CategoryID(), checkedOutCart.Period())
	if err != nil {
		return err
	}

	availableUnits, err := uow.UnitRepository().CountAvailableInCategory(ctx, checkedOutCart.CategoryID())
	if err != nil {
		return err
	}

	if len(overlapping) >= availableUnits {
		return ErrNoVehicleAvailable
	}

	return nil
}

// persistCheckout writes the booking, its deposit, the handover run and the
// cart conversion in one transaction.
func (h *CheckoutCartCommandHandler) persistCheckout(
	ctx context.Context,
	uow CheckoutUoW,
	cmd CheckoutCartCommand,
	checkedOutCart *cart.Cart,
	paymentRef string,
) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newBooking, err := booking.NewBooking(
		cmd.BookingID(),
		cmd.CustomerID(),
		checkedOutCart.CategoryID(),
		checkedOutCart.Period(),
		checkedOutCart.PickupAddress(),
		checkedOutCart.ReturnAddress(),
		checkedOutCart.Quote(),
	)
	if err != nil {
		return err
	}

	if err = newBooking.AttachPaymentRef(paymentRef); err != nil {
		return err
	}

	if err = uow.BookingRepository().Add(ctx, newBooking); err != nil {
		return err
	}

	newDeposit, err := deposit.NewDeposit(kernel.NewUUID(), newBooking.ID(), checkedOutCart.Quote().Deposit())
	if err != nil {
		return err
	}

	if err = uow.DepositRepository().Add(ctx, newDeposit); err != nil {
		return err
	}

	handover, err := delivery.NewDelivery(
		kernel.NewUUID(),
		newBooking.ID(),
		delivery.DirectionHandover,
		checkedOutCart.Period().Start(),
		checkedOutCart.PickupAddress(),
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, handover); err != nil {
		return err
	}

	if err = checkedOutCart.Convert(); err != nil {
		return err
	}

	if err = uow.CartRepository().Update(ctx, checkedOutCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CheckoutCartCommandHandler) refundBestEffort(ctx context.Context, paymentRef string, amount kernel.Money) {
	if err := h.gateway.Refund(ctx, paymentRef, amount); err != nil {
		h.logger.Error("compensating refund failed",
			"paymentRef", paymentRef,
			"amount", amount.String(),
			"error", err)
	}
}

// afterCheckout runs the post-commit side effects: the rental agreement
// document, the confirmation SMS and the availability cache invalidation.
// Failures are logged and never surfaced to the customer.
func (h *CheckoutCartCommandHandler) afterCheckout(
	ctx context.Context,
	cmd CheckoutCartCommand,
	checkedOutCart *cart.Cart,
	category *vehicle.Category,
) {
	quote := checkedOutCart.Quote()
	agreement, err := h.renderer.RenderAgreement(ports.AgreementData{
		BookingID:     cmd.BookingID(),
		CustomerName:  cmd.CustomerName(),
		CategoryName:  category.Name(),
		Period:        checkedOutCart.Period(),
		PickupAddress: checkedOutCart.PickupAddress(),
		ReturnAddress: checkedOutCart.ReturnAddress(),
		Subtotal:      quote.Subtotal(),
		Discount:      quote.Discount(),
		DeliveryFee:   quote.DeliveryFee(),
		Total:         quote.Total(),
		Deposit:       quote.Deposit(),
		IssuedAt:      time.Now().UTC(),
	})
	if err != nil {
		h.logger.Error("rental agreement rendering failed", "bookingId", cmd.BookingID().String(), "error", err)
	} else {
		key := fmt.Sprintf("agreements/%s.pdf", cmd.BookingID())
		if err = h.documents.Put(ctx, key, agreement, "application/pdf"); err != nil {
			h.logger.Error("rental agreement upload failed", "key", key, "error", err)
		}
	}

	if phone := checkedOutCart.Phone(); phone != "" {
		message := fmt.Sprintf("Your %s rental is booked for %s. Booking reference: %s",
			category.Name(), checkedOutCart.Period(), cmd.BookingID())
		if err = h.notifier.SendSMS(ctx, phone, message); err != nil {
			h.logger.Error("confirmation SMS failed", "bookingId", cmd.BookingID().String(), "error", err)
		}
	}

	if err = h.cache.Invalidate(ctx); err != nil {
		h.logger.Error("availability cache invalidation failed", "error", err)
	}
}
