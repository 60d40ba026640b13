package commands_test

import (
	"log/slog"
	"testing"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/account"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"
	"github.com/mapsensemedia/betterrental/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelBookingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	unit := testUnit(t, vehicle.UnitStatusReserved)
	unitID := unit.ID()
	cancelledBooking := testBooking(t, booking.Confirmed, &unitID)
	bookingDeposit := testDeposit(t, cancelledBooking.ID(), 20000)
	driverID := kernel.NewUUID()
	openRun := testHandoverRun(t, delivery.Unassigned, &driverID)

	cmd, err := commands.NewCancelBookingCommand(cancelledBooking.ID(), cancelledBooking.CustomerID(), "plans changed")
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	unitRepo := new(MockUnitRepository)
	depositRepo := new(MockDepositRepository)
	deliveryRepo := new(MockDeliveryRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockBookingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", mock.Anything, cancelledBooking.ID()).Return(cancelledBooking, nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Update", mock.Anything, cancelledBooking).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Get", mock.Anything, unitID).Return(unit, nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Update", mock.Anything, unit).Return(nil).Once(),
		uow.On("DepositRepository").Return(depositRepo).Once(),
		depositRepo.On("GetByBooking", mock.Anything, cancelledBooking.ID()).Return(bookingDeposit, nil).Once(),
		uow.On("DepositRepository").Return(depositRepo).Once(),
		depositRepo.On("Update", mock.Anything, bookingDeposit).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetOpenByBooking", mock.Anything, cancelledBooking.ID()).
			Return([]*delivery.Delivery{openRun}, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Update", mock.Anything, openRun).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	// Start is 96h away, so the cancellation is free: the refund is the paid
	// total plus the released deposit.
	gateway := new(MockPaymentGateway)
	gateway.On("Refund", mock.Anything, "pi_3QX1", testMoney(t, 36500)).Return(nil).Once()

	cache := new(MockAvailabilityCache)
	cache.On("Invalidate", mock.Anything).Return(nil).Once()

	h := commands.NewCancelBookingCommandHandler(
		factory, services.NewCancellationPolicy(), gateway, cache, slog.Default())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, booking.Cancelled, cancelledBooking.Status())
	require.Equal(t, vehicle.UnitStatusAvailable, unit.Status())
	require.True(t, bookingDeposit.Remaining().IsZero())
	require.Equal(t, delivery.Cancelled, openRun.Status())
	uow.AssertExpectations(t)
	gateway.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCancelBookingCommandHandler_Handle_CompletedBookingRejected(t *testing.T) {
	ctx := t.Context()
	unitID := kernel.NewUUID()
	completedBooking := testBooking(t, booking.Completed, &unitID)

	cmd, err := commands.NewCancelBookingCommand(completedBooking.ID(), completedBooking.CustomerID(), "too late")
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	uow := new(MockBookingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", mock.Anything, completedBooking.ID()).Return(completedBooking, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockPaymentGateway)

	h := commands.NewCancelBookingCommandHandler(
		factory, services.NewCancellationPolicy(), gateway, new(MockAvailabilityCache), slog.Default())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Equal(t, booking.Completed, completedBooking.Status())
	gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBookingCommandHandler_Handle_StrangerRejected(t *testing.T) {
	ctx := t.Context()
	unit := testUnit(t, vehicle.UnitStatusReserved)
	unitID := unit.ID()
	confirmedBooking := testBooking(t, booking.Confirmed, &unitID)
	stranger := testActorAccount(t, kernel.NewUUID(), account.RoleCustomer)

	cmd, err := commands.NewCancelBookingCommand(confirmedBooking.ID(), stranger.ID(), "not mine")
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockBookingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", mock.Anything, confirmedBooking.ID()).Return(confirmedBooking, nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", mock.Anything, stranger.ID()).Return(stranger, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockPaymentGateway)

	h := commands.NewCancelBookingCommandHandler(
		factory, services.NewCancellationPolicy(), gateway, new(MockAvailabilityCache), slog.Default())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrBookingAccessDenied)
	require.Equal(t, booking.Confirmed, confirmedBooking.Status())
	bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelBookingCommandHandler_Handle_StaffActorAllowed(t *testing.T) {
	ctx := t.Context()
	pendingBooking := testBooking(t, booking.Pending, nil)
	bookingDeposit := testDeposit(t, pendingBooking.ID(), 20000)
	agent := testActorAccount(t, kernel.NewUUID(), account.RoleAgent)

	cmd, err := commands.NewCancelBookingCommand(pendingBooking.ID(), agent.ID(), "fraud suspected")
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	accountRepo := new(MockAccountRepository)
	depositRepo := new(MockDepositRepository)
	deliveryRepo := new(MockDeliveryRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockBookingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", mock.Anything, pendingBooking.ID()).Return(pendingBooking, nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", mock.Anything, agent.ID()).Return(agent, nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Update", mock.Anything, pendingBooking).Return(nil).Once(),
		uow.On("DepositRepository").Return(depositRepo).Once(),
		depositRepo.On("GetByBooking", mock.Anything, pendingBooking.ID()).Return(bookingDeposit, nil).Once(),
		uow.On("DepositRepository").Return(depositRepo).Once(),
		depositRepo.On("Update", mock.Anything, bookingDeposit).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetOpenByBooking", mock.Anything, pendingBooking.ID()).
			Return([]*delivery.Delivery{}, nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockPaymentGateway)
	gateway.On("Refund", mock.Anything, "pi_3QX1", testMoney(t, 36500)).Return(nil).Once()

	cache := new(MockAvailabilityCache)
	cache.On("Invalidate", mock.Anything).Return(nil).Once()

	h := commands.NewCancelBookingCommandHandler(
		factory, services.NewCancellationPolicy(), gateway, cache, slog.Default())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, booking.Cancelled, pendingBooking.Status())
	uow.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestCancelBookingCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	h := commands.NewCancelBookingCommandHandler(
		new(MockBookingUoWFactory), services.NewCancellationPolicy(),
		new(MockPaymentGateway), new(MockAvailabilityCache), slog.Default())
	err := h.Handle(ctx, commands.CancelBookingCommand{})
	require.Error(t, err)
}
