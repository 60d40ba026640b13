package commands

import (
	"context"
	"fmt"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/audit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
)

// ChangeUnitStatusCommandHandler handles the business logic for unit status
// administration. The aggregate's state machine decides which moves are legal.
type ChangeUnitStatusCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewChangeUnitStatusCommandHandler creates a handler for unit status operations.
func NewChangeUnitStatusCommandHandler(uowFactory FleetUoWFactory) ChangeUnitStatusCommandHandler {
	return ChangeUnitStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the unit status change command.
func (h *ChangeUnitStatusCommandHandler) Handle(ctx context.Context, cmd ChangeUnitStatusCommand) error {
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

	unit, err := uow.UnitRepository().Get(ctx, cmd.UnitID())
	if err != nil {
		return err
	}

	oldStatus := unit.Status()

	if err = h.applyTransition(unit, cmd.To()); err != nil {
		return err
	}

	if err = uow.UnitRepository().Update(ctx, unit); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		cmd.ActorID(),
		"unit.change_status",
		"unit",
		unit.ID().String(),
		map[string]string{"status": oldStatus.String()},
		map[string]string{"status": unit.Status().String()},
	)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// applyTransition maps the requested target status to the aggregate's
// transition. Reserved and Rented belong to the booking lifecycle and are
// rejected here.
func (h *ChangeUnitStatusCommandHandler) applyTransition(unit *vehicle.Unit, to vehicle.UnitStatus) error {
	switch to {
	case vehicle.UnitStatusMaintenance:
		return unit.EnterMaintenance()
	case vehicle.UnitStatusAvailable:
		if unit.Status() == vehicle.UnitStatusMaintenance {
			return unit.FinishMaintenance()
		}
		return unit.Release()
	case vehicle.UnitStatusRetired:
		return unit.Retire()
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s cannot be set directly", to))
	}
}
