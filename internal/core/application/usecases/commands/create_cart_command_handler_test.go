package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/services"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	category := testCategory(t)
	start := time.Now().Add(48 * time.Hour)

	cmd, err := commands.NewCreateCartCommand(
		kernel.NewUUID(), nil, "jane@example.com", "",
		category.ID(), start, start.Add(72*time.Hour),
		"12 Ocean Drive", "12 Ocean Drive",
	)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	categoryRepo := new(MockCategoryRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CategoryRepository").Return(categoryRepo).Once(),
		categoryRepo.On("Get", mock.Anything, category.ID()).Return(category, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Add", mock.Anything, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCartCommandHandler(factory, services.NewPricer())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	cartRepo.AssertExpectations(t)
	categoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateCartCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateCartCommand{} // not constructed properly
	factory := new(MockCartUoWFactory)
	h := commands.NewCreateCartCommandHandler(factory, services.NewPricer())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateCartCommandHandler_Handle_CategoryNotFound(t *testing.T) {
	ctx := t.Context()
	categoryID := kernel.NewUUID()
	start := time.Now().Add(48 * time.Hour)

	cmd, err := commands.NewCreateCartCommand(
		kernel.NewUUID(), nil, "jane@example.com", "",
		categoryID, start, start.Add(72*time.Hour),
		"12 Ocean Drive", "12 Ocean Drive",
	)
	require.NoError(t, err)

	categoryRepo := new(MockCategoryRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CategoryRepository").Return(categoryRepo).Once(),
		categoryRepo.On("Get", mock.Anything, categoryID).
			Return(nil, errs.NewObjectNotFoundError("category", categoryID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCartCommandHandler(factory, services.NewPricer())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateCartCommand_RequiresContact(t *testing.T) {
	start := time.Now().Add(48 * time.Hour)
	_, err := commands.NewCreateCartCommand(
		kernel.NewUUID(), nil, "", "",
		kernel.NewUUID(), start, start.Add(72*time.Hour),
		"12 Ocean Drive", "12 Ocean Drive",
	)
	require.ErrorIs(t, err, commands.ErrCartContactIsRequired)
}

func TestCreateCartCommand_RequiresAddresses(t *testing.T) {
	start := time.Now().Add(48 * time.Hour)
	_, err := commands.NewCreateCartCommand(
		kernel.NewUUID(), nil, "jane@example.com", "",
		kernel.NewUUID(), start, start.Add(72*time.Hour),
		"", "12 Ocean Drive",
	)
	require.ErrorIs(t, err, commands.ErrPickupAddressRequired)
}

func TestCreateCartCommandHandler_Handle_InvalidPeriod(t *testing.T) {
	ctx := t.Context()
	start := time.Now().Add(48 * time.Hour)

	cmd, err := commands.NewCreateCartCommand(
		kernel.NewUUID(), nil, "jane@example.com", "",
		kernel.NewUUID(), start, start.Add(-time.Hour),
		"12 Ocean Drive", "12 Ocean Drive",
	)
	require.NoError(t, err)

	factory := new(MockCartUoWFactory)
	h := commands.NewCreateCartCommandHandler(factory, services.NewPricer())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.False(t, errors.Is(err, commands.ErrCreateCartCommandIsNotConstructed))
}
