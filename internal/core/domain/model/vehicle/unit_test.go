package vehicle_test

import (
	"fmt"
	"testing"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUnit(t *testing.T) *vehicle.Unit {
	t.Helper()
	unit, err := vehicle.NewUnit(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"B-RT 4711",
		"WVWZZZ1JZXW000001",
		2022,
		42000,
	)
	require.NoError(t, err)
	return unit
}

func TestNewUnit(t *testing.T) {
	t.Run("should create available unit", func(t *testing.T) {
		unit := validUnit(t)

		assert.Equal(t, vehicle.UnitStatusAvailable, unit.Status())
		assert.Equal(t, "B-RT 4711", unit.Plate())
		assert.Equal(t, 42000, unit.OdometerKm())
		assert.NoError(t, unit.Validate())
	})

	t.Run("should reject empty plate", func(t *testing.T) {
		_, err := vehicle.NewUnit(kernel.NewUUID(), kernel.NewUUID(), "", "WVWZZZ1JZXW000001", 2022, 0)
		require.Error(t, err)
	})

	t.Run("should reject malformed VIN", func(t *testing.T) {
		_, err := vehicle.NewUnit(kernel.NewUUID(), kernel.NewUUID(), "B-RT 4711", "SHORT", 2022, 0)
		require.Error(t, err)
	})

	t.Run("should reject implausible model year", func(t *testing.T) {
		_, err := vehicle.NewUnit(kernel.NewUUID(), kernel.NewUUID(), "B-RT 4711", "WVWZZZ1JZXW000001", 1889, 0)
		require.Error(t, err)
	})

	t.Run("should reject negative odometer", func(t *testing.T) {
		_, err := vehicle.NewUnit(kernel.NewUUID(), kernel.NewUUID(), "B-RT 4711", "WVWZZZ1JZXW000001", 2022, -1)
		require.Error(t, err)
	})
}

func TestUnitStatus_Transitions(t *testing.T) {
	t.Run("should walk the rental cycle", func(t *testing.T) {
		unit := validUnit(t)

		require.NoError(t, unit.Reserve())
		assert.Equal(t, vehicle.UnitStatusReserved, unit.Status())

		require.NoError(t, unit.Rent())
		assert.Equal(t, vehicle.UnitStatusRented, unit.Status())

		require.NoError(t, unit.Release())
		assert.Equal(t, vehicle.UnitStatusAvailable, unit.Status())
	})

	t.Run("should release a reserved unit on cancellation", func(t *testing.T) {
		unit := validUnit(t)
		require.NoError(t, unit.Reserve())

		require.NoError(t, unit.Release())

		assert.Equal(t, vehicle.UnitStatusAvailable, unit.Status())
	})

	t.Run("should reject rent without reservation", func(t *testing.T) {
		unit := validUnit(t)

		require.Error(t, unit.Rent())
	})

	t.Run("should reject double reserve", func(t *testing.T) {
		unit := validUnit(t)
		require.NoError(t, unit.Reserve())

		require.Error(t, unit.Reserve())
	})

	t.Run("should enter and finish maintenance", func(t *testing.T) {
		unit := validUnit(t)

		require.NoError(t, unit.EnterMaintenance())
		assert.Equal(t, vehicle.UnitStatusMaintenance, unit.Status())

		require.NoError(t, unit.FinishMaintenance())
		assert.Equal(t, vehicle.UnitStatusAvailable, unit.Status())
	})

	t.Run("should allow maintenance from any non-retired status", func(t *testing.T) {
		unit := validUnit(t)
		require.NoError(t, unit.Reserve())

		require.NoError(t, unit.EnterMaintenance())
	})

	t.Run("retire is final", func(t *testing.T) {
		unit := validUnit(t)

		require.NoError(t, unit.Retire())
		assert.Equal(t, vehicle.UnitStatusRetired, unit.Status())

		require.Error(t, unit.Reserve())
		require.Error(t, unit.EnterMaintenance())
		require.Error(t, unit.Retire())
	})
}

func TestUnitStatusFromString(t *testing.T) {
	t.Run("should round trip all valid statuses", func(t *testing.T) {
		statuses := []vehicle.UnitStatus{
			vehicle.UnitStatusAvailable,
			vehicle.UnitStatusReserved,
			vehicle.UnitStatusRented,
			vehicle.UnitStatusMaintenance,
			vehicle.UnitStatusRetired,
		}

		for _, status := range statuses {
			t.Run(fmt.Sprintf("round trip %s", status), func(t *testing.T) {
				parsed, err := vehicle.UnitStatusFromString(status.String())
				require.NoError(t, err)
				assert.Equal(t, status, parsed)
			})
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := vehicle.UnitStatusFromString("Parked")
		require.Error(t, err)
	})
}

func TestUnit_RecordOdometer(t *testing.T) {
	t.Run("should record increasing reading", func(t *testing.T) {
		unit := validUnit(t)

		require.NoError(t, unit.RecordOdometer(42500))

		assert.Equal(t, 42500, unit.OdometerKm())
	})

	t.Run("should accept unchanged reading", func(t *testing.T) {
		unit := validUnit(t)

		require.NoError(t, unit.RecordOdometer(42000))
	})

	t.Run("should reject reading lower than recorded", func(t *testing.T) {
		unit := validUnit(t)

		err := unit.RecordOdometer(41999)

		require.Error(t, err)
		assert.ErrorIs(t, err, vehicle.ErrOdometerWentBackwards)
		assert.Equal(t, 42000, unit.OdometerKm())
	})
}

func TestRestoreUnit(t *testing.T) {
	t.Run("should restore rented unit", func(t *testing.T) {
		id := kernel.NewUUID()

		unit, err := vehicle.RestoreUnit(
			id, kernel.NewUUID(), "B-RT 4711", "WVWZZZ1JZXW000001", 2022, 42000,
			vehicle.UnitStatusRented)

		require.NoError(t, err)
		assert.Equal(t, vehicle.UnitStatusRented, unit.Status())
		assert.True(t, id.IsEqual(unit.ID()))
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := vehicle.RestoreUnit(
			kernel.NewUUID(), kernel.NewUUID(), "B-RT 4711", "WVWZZZ1JZXW000001", 2022, 42000,
			vehicle.UnitStatusUnknown)

		require.Error(t, err)
	})
}
