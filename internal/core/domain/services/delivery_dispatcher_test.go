package services_test

import (
	"testing"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRun(t *testing.T) *delivery.Delivery {
	t.Helper()
	run, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), delivery.DirectionHandover,
		time.Now().Add(24*time.Hour), "221B Baker Street")
	require.NoError(t, err)
	return run
}

func newDriver(t *testing.T, name string) *delivery.Driver {
	t.Helper()
	driver, err := delivery.NewDriver(kernel.NewUUID(), name, "+15551234567")
	require.NoError(t, err)
	return driver
}

func runAssignedTo(t *testing.T, driver *delivery.Driver) *delivery.Delivery {
	t.Helper()
	run := newRun(t)
	require.NoError(t, run.AssignDriver(driver.ID()))
	return run
}

func TestDeliveryDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewDeliveryDispatcher()

	t.Run("should pick the least loaded active driver", func(t *testing.T) {
		busy := newDriver(t, "Busy")
		idle := newDriver(t, "Idle")
		openRuns := []*delivery.Delivery{runAssignedTo(t, busy), runAssignedTo(t, busy)}

		run := newRun(t)
		assigned, err := dispatcher.Dispatch(run, []*delivery.Driver{busy, idle}, openRuns)

		require.NoError(t, err)
		assert.True(t, idle.IsEqual(assigned))
		require.NotNil(t, run.DriverID())
		assert.True(t, idle.ID().IsEqual(*run.DriverID()))
	})

	t.Run("should skip inactive drivers", func(t *testing.T) {
		inactive := newDriver(t, "Off duty")
		inactive.Deactivate()
		active := newDriver(t, "On duty")

		run := newRun(t)
		assigned, err := dispatcher.Dispatch(run, []*delivery.Driver{inactive, active}, nil)

		require.NoError(t, err)
		assert.True(t, active.IsEqual(assigned))
	})

	t.Run("should prefer the first driver on ties", func(t *testing.T) {
		first := newDriver(t, "First")
		second := newDriver(t, "Second")

		assigned, err := dispatcher.Dispatch(newRun(t), []*delivery.Driver{first, second}, nil)

		require.NoError(t, err)
		assert.True(t, first.IsEqual(assigned))
	})

	t.Run("should fail when no driver is available", func(t *testing.T) {
		inactive := newDriver(t, "Off duty")
		inactive.Deactivate()

		_, err := dispatcher.Dispatch(newRun(t), []*delivery.Driver{inactive}, nil)
		require.ErrorIs(t, err, services.ErrNoDriverAvailable)

		_, err = dispatcher.Dispatch(newRun(t), nil, nil)
		require.ErrorIs(t, err, services.ErrNoDriverAvailable)
	})

	t.Run("should reject a run that already started", func(t *testing.T) {
		driver := newDriver(t, "Driver")
		run := runAssignedTo(t, driver)
		require.NoError(t, run.Advance("dispatcher", ""))

		_, err := dispatcher.Dispatch(run, []*delivery.Driver{driver}, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, delivery.ErrDriverAlreadyOnRoad)
	})

	t.Run("should ignore terminal runs when counting load", func(t *testing.T) {
		loaded := newDriver(t, "Loaded")
		other := newDriver(t, "Other")

		cancelled := runAssignedTo(t, loaded)
		require.NoError(t, cancelled.Cancel("dispatcher", "customer no-show"))
		openRuns := []*delivery.Delivery{cancelled, runAssignedTo(t, other)}

		assigned, err := dispatcher.Dispatch(newRun(t), []*delivery.Driver{loaded, other}, openRuns)

		require.NoError(t, err)
		assert.True(t, loaded.IsEqual(assigned))
	})
}
