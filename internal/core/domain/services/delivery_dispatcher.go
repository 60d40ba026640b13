package services

import (
	"errors"
	"math"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
)

// ErrNoDriverAvailable is returned when no suitable driver exists for a delivery run.
// This occurs when either no drivers are provided or none of them is active.
var ErrNoDriverAvailable = errors.New("no active driver available")

// DeliveryDispatcher is a domain service responsible for finding and assigning
// the best driver for a delivery run based on current workload.
//
// Key responsibilities:
//   - Validating the run before dispatch
//   - Selecting the least-loaded active driver
//   - Ensuring the run is assigned atomically
//
// Business rules:
//   - Only active drivers are considered
//   - Selection prioritizes the driver with the fewest runs in progress
//   - A run can only be dispatched while it is still Unassigned
//
// Example usage:
//
//	dispatcher := NewDeliveryDispatcher()
//	run, _ := delivery.NewDelivery(id, bookingID, delivery.DirectionHandover, at, address)
//
//	driver, err := dispatcher.Dispatch(run, drivers, openRuns)
//	if errors.Is(err, ErrNoDriverAvailable) {
//	    // No driver can take this run right now
//	    return
//	}
type DeliveryDispatcher struct{}

// NewDeliveryDispatcher creates a new DeliveryDispatcher instance.
func NewDeliveryDispatcher() DeliveryDispatcher {
	return DeliveryDispatcher{}
}

// Dispatch finds the least-loaded active driver and assigns the run to them.
//
// Parameters:
//   - run: The delivery run to be dispatched (must be valid and Unassigned)
//   - drivers: Candidate drivers to consider
//   - openRuns: All runs currently in progress, used to measure driver workload
//
// Returns:
//   - *delivery.Driver: The driver assigned to the run
//   - error: ErrNoDriverAvailable if no active driver exists, or validation/assignment errors
//
// Selection algorithm:
//   - Validates the run and each driver
//   - Skips inactive drivers
//   - Counts each candidate's runs among openRuns
//   - Selects the driver with the minimum count; first driver wins ties
func (d DeliveryDispatcher) Dispatch(
	run *delivery.Delivery,
	drivers []*delivery.Driver,
	openRuns []*delivery.Delivery,
) (*delivery.Driver, error) {
	if err := run.Validate(); err != nil {
		return nil, err
	}

	loads, err := d.countLoads(openRuns)
	if err != nil {
		return nil, err
	}

	bestDriver, err := d.findBestDriver(drivers, loads)
	if err != nil {
		return nil, err
	}

	if err = run.AssignDriver(bestDriver.ID()); err != nil {
		return nil, err
	}

	return bestDriver, nil
}

// countLoads tallies how many in-progress runs each driver carries.
// Terminal runs and runs without a driver contribute nothing.
func (d DeliveryDispatcher) countLoads(openRuns []*delivery.Delivery) (map[string]int, error) {
	loads := make(map[string]int, len(openRuns))
	for _, run := range openRuns {
		if err := run.Validate(); err != nil {
			return nil, err
		}
		if run.Status().IsTerminal() || run.DriverID() == nil {
			continue
		}
		loads[run.DriverID().String()]++
	}
	return loads, nil
}

// findBestDriver picks the active driver with the fewest runs in progress.
func (d DeliveryDispatcher) findBestDriver(
	drivers []*delivery.Driver,
	loads map[string]int,
) (*delivery.Driver, error) {
	var (
		bestDriver *delivery.Driver
		bestLoad   = math.MaxInt
	)

	for _, candidate := range drivers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
		if !candidate.IsActive() {
			continue
		}

		load := loads[candidate.ID().String()]
		if load < bestLoad {
			bestDriver = candidate
			bestLoad = load
		}
	}

	if bestDriver == nil {
		return nil, ErrNoDriverAvailable
	}

	return bestDriver, nil
}
