package commands

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/audit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"
)

// AddUnitCommandHandler handles the business logic for adding a concrete
// vehicle to the fleet. The category must exist; the unit starts Available.
type AddUnitCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewAddUnitCommandHandler creates a handler for unit addition operations.
func NewAddUnitCommandHandler(uowFactory FleetUoWFactory) AddUnitCommandHandler {
	return AddUnitCommandHandler{uowFactory: uowFactory}
}

// Handle processes the unit addition command.
func (h *AddUnitCommandHandler) Handle(ctx context.Context, cmd AddUnitCommand) error {
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

	unit, err := vehicle.NewUnit(
		cmd.UnitID(),
		category.ID(),
		cmd.Plate(),
		cmd.VIN(),
		cmd.Year(),
		cmd.OdometerKm(),
	)
	if err != nil {
		return err
	}

	if err = uow.UnitRepository().Add(ctx, unit); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		cmd.ActorID(),
		"unit.add",
		"unit",
		unit.ID().String(),
		nil,
		map[string]string{
			"categoryId": category.ID().String(),
			"plate":      unit.Plate(),
			"vin":        unit.VIN(),
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
