package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/audit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/services"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
)

// ErrDriverIsNotActive indicates an explicit assignment to a deactivated driver.
var ErrDriverIsNotActive = errors.New("driver is not active")

// AssignDriverCommandHandler handles the business logic for driver assignment.
// Explicit assignments go to the named driver; otherwise the dispatcher picks
// the least-loaded active one.
type AssignDriverCommandHandler struct {
	uowFactory DeliveryUoWFactory
	dispatcher services.DeliveryDispatcher
}

// NewAssignDriverCommandHandler creates a handler for driver assignment operations.
func NewAssignDriverCommandHandler(
	uowFactory DeliveryUoWFactory,
	dispatcher services.DeliveryDispatcher,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the driver assignment command.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	run, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	var assignedDriver *delivery.Driver
	if cmd.DriverID() != nil {
		assignedDriver, err = h.assignExplicit(ctx, uow, run, *cmd.DriverID())
	} else {
		assignedDriver, err = h.autoDispatch(ctx, uow, run)
	}
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, run); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		cmd.ActorID(),
		"delivery.assign_driver",
		"delivery",
		run.ID().String(),
		nil,
		map[string]string{"driverId": assignedDriver.ID().String(), "driver": assignedDriver.Name()},
	)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *AssignDriverCommandHandler) assignExplicit(
	ctx context.Context,
	uow DeliveryUoW,
	run *delivery.Delivery,
	driverID kernel.UUID,
) (*delivery.Driver, error) {
	driver, err := uow.DriverRepository().Get(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if !driver.IsActive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("driver is invalid",
			fmt.Errorf("%w: %s", ErrDriverIsNotActive, driver.ID()))
	}

	if err = run.AssignDriver(driver.ID()); err != nil {
		return nil, err
	}

	return driver, nil
}

func (h *AssignDriverCommandHandler) autoDispatch(
	ctx context.Context,
	uow DeliveryUoW,
	run *delivery.Delivery,
) (*delivery.Driver, error) {
	drivers, err := uow.DriverRepository().GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	openRuns, err := uow.DeliveryRepository().GetAllOpen(ctx)
	if err != nil {
		return nil, err
	}

	return h.dispatcher.Dispatch(run, drivers, openRuns)
}
