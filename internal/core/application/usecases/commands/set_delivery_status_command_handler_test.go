package commands_test

import (
	"testing"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"
	"github.com/mapsensemedia/betterrental/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetDeliveryStatusCommandHandler_Handle_DeliveredActivatesBooking(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	run := testHandoverRun(t, delivery.Arrived, &driverID)

	unit := testUnit(t, vehicle.UnitStatusReserved)
	unitID := unit.ID()
	confirmedBooking := testBooking(t, booking.Confirmed, &unitID)

	cmd, err := commands.NewSetDeliveryStatusCommand(
		run.ID(), delivery.Delivered, kernel.NewUUID(), "Dana", "keys handed over")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	bookingRepo := new(MockBookingRepository)
	unitRepo := new(MockUnitRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, run.ID()).Return(run, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Update", mock.Anything, run).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", mock.Anything, run.BookingID()).Return(confirmedBooking, nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Update", mock.Anything, confirmedBooking).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Get", mock.Anything, unitID).Return(unit, nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("Update", mock.Anything, unit).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockDeliveryEventPublisher)
	publisher.On("PublishStatusChanged", mock.MatchedBy(func(event ports.DeliveryEvent) bool {
		return event.DeliveryID == run.ID().String() &&
			event.Status == delivery.Delivered.String() &&
			event.StepIndex == delivery.Delivered.StepIndex()
	})).Once()

	h := commands.NewSetDeliveryStatusCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, delivery.Delivered, run.Status())
	require.Equal(t, booking.Active, confirmedBooking.Status())
	require.Equal(t, vehicle.UnitStatusRented, unit.Status())
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestSetDeliveryStatusCommandHandler_Handle_IllegalJumpRejected(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	run := testHandoverRun(t, delivery.PickedUp, &driverID)

	cmd, err := commands.NewSetDeliveryStatusCommand(
		run.ID(), delivery.Delivered, kernel.NewUUID(), "Dana", "")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, run.ID()).Return(run, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockDeliveryEventPublisher)

	h := commands.NewSetDeliveryStatusCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Equal(t, delivery.PickedUp, run.Status())
	publisher.AssertNotCalled(t, "PublishStatusChanged", mock.Anything)
}

func TestSetDeliveryStatusCommandHandler_Handle_CancellationSkipsSideEffects(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	run := testHandoverRun(t, delivery.EnRoute, &driverID)

	cmd, err := commands.NewSetDeliveryStatusCommand(
		run.ID(), delivery.Cancelled, kernel.NewUUID(), "Dana", "customer unreachable")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, run.ID()).Return(run, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Update", mock.Anything, run).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockDeliveryEventPublisher)
	publisher.On("PublishStatusChanged", mock.AnythingOfType("ports.DeliveryEvent")).Once()

	h := commands.NewSetDeliveryStatusCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, delivery.Cancelled, run.Status())
	uow.AssertExpectations(t)
}
