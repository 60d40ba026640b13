package commands

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/audit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"
)

// CreateCategoryCommandHandler handles the business logic for adding a
// vehicle category to the catalogue.
type CreateCategoryCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category creation operations.
func NewCreateCategoryCommandHandler(uowFactory FleetUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the category creation command.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	category, err := vehicle.NewCategory(
		cmd.CategoryID(),
		cmd.Name(),
		cmd.Class(),
		cmd.Seats(),
		cmd.Transmission(),
		cmd.DailyRate(),
		cmd.Deposit(),
		cmd.DeliveryFee(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CategoryRepository().Add(ctx, category); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		cmd.ActorID(),
		"category.create",
		"category",
		category.ID().String(),
		nil,
		map[string]string{
			"name":      category.Name(),
			"class":     category.Class(),
			"dailyRate": category.DailyRate().String(),
		},
	)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
