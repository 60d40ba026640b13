package commands_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testUpcomingHandover(t *testing.T, driverID kernel.UUID, remindedAt *time.Time) *delivery.Delivery {
	t.Helper()
	run, err := delivery.RestoreDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		&driverID,
		delivery.DirectionHandover,
		time.Now().Add(2*time.Hour),
		"12 Ocean Drive",
		delivery.Unassigned,
		nil,
		remindedAt,
	)
	require.NoError(t, err)
	return run
}

func TestSendPickupRemindersCommandHandler_Handle_RemindsEachRunOnce(t *testing.T) {
	ctx := t.Context()
	driver, err := delivery.NewDriver(kernel.NewUUID(), "Alice Johnson", "+15550100")
	require.NoError(t, err)

	freshRun := testUpcomingHandover(t, driver.ID(), nil)
	alreadyReminded := time.Now().Add(-time.Hour)
	remindedRun := testUpcomingHandover(t, driver.ID(), &alreadyReminded)

	cmd, err := commands.NewSendPickupRemindersCommand(24 * time.Hour)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetAllOpen", mock.Anything).
			Return([]*delivery.Delivery{freshRun, remindedRun}, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, driver.ID()).Return(driver, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Update", mock.Anything, freshRun).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("SendSMS", mock.Anything, "+15550100", mock.AnythingOfType("string")).Return(nil).Once()

	h := commands.NewSendPickupRemindersCommandHandler(factory, notifier, slog.Default())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, freshRun.RemindedAt())
	require.Equal(t, alreadyReminded.UTC(), *remindedRun.RemindedAt())
	notifier.AssertNumberOfCalls(t, "SendSMS", 1)
	uow.AssertExpectations(t)
}

func TestSendPickupRemindersCommandHandler_Handle_FailedSendStaysUnmarked(t *testing.T) {
	ctx := t.Context()
	driver, err := delivery.NewDriver(kernel.NewUUID(), "Alice Johnson", "+15550100")
	require.NoError(t, err)
	freshRun := testUpcomingHandover(t, driver.ID(), nil)

	cmd, err := commands.NewSendPickupRemindersCommand(24 * time.Hour)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetAllOpen", mock.Anything).
			Return([]*delivery.Delivery{freshRun}, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, driver.ID()).Return(driver, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("SendSMS", mock.Anything, "+15550100", mock.AnythingOfType("string")).
		Return(errors.New("sms gateway is down")).Once()

	h := commands.NewSendPickupRemindersCommandHandler(factory, notifier, slog.Default())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Nil(t, freshRun.RemindedAt())
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
