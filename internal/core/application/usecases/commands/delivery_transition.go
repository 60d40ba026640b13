package commands

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/audit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/ports"
)

// applyDeliveredSideEffects runs the state changes a completed handover run
// pulls with it: the booking goes Active and its unit goes Rented. Runs in
// the same transaction as the status change so the rental never activates
// without its run completing, and vice versa.
//
// Return runs completing have no automatic effect; the settlement is a
// separate staff action.
func applyDeliveredSideEffects(
	ctx context.Context,
	uow DeliveryUoW,
	run *delivery.Delivery,
	actorID kernel.UUID,
) error {
	if run.Direction() != delivery.DirectionHandover || run.Status() != delivery.Delivered {
		return nil
	}

	activatedBooking, err := uow.BookingRepository().Get(ctx, run.BookingID())
	if err != nil {
		return err
	}

	oldStatus := activatedBooking.Status()

	if err = activatedBooking.Activate(); err != nil {
		return err
	}

	if err = uow.BookingRepository().Update(ctx, activatedBooking); err != nil {
		return err
	}

	if unitID := activatedBooking.UnitID(); unitID != nil {
		unit, unitErr := uow.UnitRepository().Get(ctx, *unitID)
		if unitErr != nil {
			return unitErr
		}

		if unitErr = unit.Rent(); unitErr != nil {
			return unitErr
		}

		if unitErr = uow.UnitRepository().Update(ctx, unit); unitErr != nil {
			return unitErr
		}
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		actorID,
		"booking.activate",
		"booking",
		activatedBooking.ID().String(),
		map[string]string{"status": oldStatus.String()},
		map[string]string{"status": activatedBooking.Status().String()},
	)
	if err != nil {
		return err
	}

	return uow.AuditRepository().Add(ctx, entry)
}

// deliveryEventFor builds the back-office push event for a run's current state.
func deliveryEventFor(run *delivery.Delivery, actor string) ports.DeliveryEvent {
	return ports.DeliveryEvent{
		DeliveryID: run.ID().String(),
		BookingID:  run.BookingID().String(),
		Status:     run.Status().String(),
		StepIndex:  run.Status().StepIndex(),
		Actor:      actor,
	}
}
