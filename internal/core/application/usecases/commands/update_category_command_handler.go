package commands

import (
	"context"
	"strconv"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/audit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
)

// UpdateCategoryCommandHandler handles the business logic for catalogue
// updates. Rate changes never touch existing bookings.
type UpdateCategoryCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewUpdateCategoryCommandHandler creates a handler for category update operations.
func NewUpdateCategoryCommandHandler(uowFactory FleetUoWFactory) UpdateCategoryCommandHandler {
	return UpdateCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the category update command.
func (h *UpdateCategoryCommandHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	category, err := uow.CategoryRepository().Get(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	oldValues := map[string]string{
		"name":        category.Name(),
		"class":       category.Class(),
		"dailyRate":   category.DailyRate().String(),
		"deposit":     category.Deposit().String(),
		"deliveryFee": category.DeliveryFee().String(),
		"active":      strconv.FormatBool(category.IsActive()),
	}

	if err = category.Rename(cmd.Name(), cmd.Class()); err != nil {
		return err
	}

	if err = category.ChangeRates(cmd.DailyRate(), cmd.Deposit(), cmd.DeliveryFee()); err != nil {
		return err
	}

	if cmd.Active() {
		category.Activate()
	} else {
		category.Deactivate()
	}

	if err = uow.CategoryRepository().Update(ctx, category); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		cmd.ActorID(),
		"category.update",
		"category",
		category.ID().String(),
		oldValues,
		map[string]string{
			"name":        category.Name(),
			"class":       category.Class(),
			"dailyRate":   category.DailyRate().String(),
			"deposit":     category.Deposit().String(),
			"deliveryFee": category.DeliveryFee().String(),
			"active":      strconv.FormatBool(category.IsActive()),
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
