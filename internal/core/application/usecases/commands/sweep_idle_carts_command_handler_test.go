package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/cart"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSweepIdleCartsCommandHandler_Handle_NudgesOnlyRecoverableCarts(t *testing.T) {
	ctx := t.Context()

	// Idle past the abandon threshold but not the expiry threshold: the cart
	// is abandoned and gets a recovery nudge.
	recoverableCart := testIdleCart(t, cart.Active, "+15550100", 2*time.Hour)

	// Idle past both thresholds: the cart is abandoned and expired in the
	// same pass, so no nudge goes out for it.
	staleCart := testIdleCart(t, cart.Active, "+15550111", 72*time.Hour)

	// Abandoned in an earlier pass and now past the expiry threshold.
	expiringCart := testIdleCart(t, cart.Abandoned, "+15550122", 72*time.Hour)

	cmd, err := commands.NewSweepIdleCartsCommand(time.Hour, 48*time.Hour)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetAllIdle", mock.Anything, cart.Active, mock.AnythingOfType("time.Time")).
			Return([]*cart.Cart{recoverableCart, staleCart}, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Update", mock.Anything, recoverableCart).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Update", mock.Anything, staleCart).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetAllIdle", mock.Anything, cart.Abandoned, mock.AnythingOfType("time.Time")).
			Return([]*cart.Cart{expiringCart}, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Update", mock.Anything, expiringCart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("SendSMS", mock.Anything, "+15550100", mock.AnythingOfType("string")).Return(nil).Once()

	h := commands.NewSweepIdleCartsCommandHandler(factory, notifier, slog.Default())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, cart.Abandoned, recoverableCart.Status())
	require.Equal(t, cart.Abandoned, staleCart.Status())
	require.Equal(t, cart.Expired, expiringCart.Status())
	notifier.AssertNumberOfCalls(t, "SendSMS", 1)
	notifier.AssertNotCalled(t, "SendSMS", mock.Anything, "+15550111", mock.AnythingOfType("string"))
	uow.AssertExpectations(t)
}
