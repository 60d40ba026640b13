package commands_test

import (
	"testing"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/account"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/cart"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/deposit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/require"
)

func testMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoney(amount, "USD")
	require.NoError(t, err)
	return money
}

func testPeriod(t *testing.T, start time.Time, days int) kernel.RentalPeriod {
	t.Helper()
	period, err := kernel.NewRentalPeriod(start, start.Add(time.Duration(days)*24*time.Hour))
	require.NoError(t, err)
	return period
}

func testCategory(t *testing.T) *vehicle.Category {
	t.Helper()
	category, err := vehicle.NewCategory(
		kernel.NewUUID(),
		"Toyota Corolla or similar",
		"Compact",
		5,
		vehicle.TransmissionAutomatic,
		testMoney(t, 5000),
		testMoney(t, 20000),
		testMoney(t, 1500),
	)
	require.NoError(t, err)
	return category
}

func testCharges(t *testing.T) booking.Charges {
	t.Helper()
	charges, err := booking.NewCharges(
		testMoney(t, 15000),
		testMoney(t, 0),
		testMoney(t, 1500),
		testMoney(t, 16500),
		testMoney(t, 20000),
	)
	require.NoError(t, err)
	return charges
}

func testBooking(t *testing.T, status booking.Status, unitID *kernel.UUID) *booking.Booking {
	t.Helper()
	restored, err := booking.RestoreBooking(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		unitID,
		testPeriod(t, time.Now().Add(96*time.Hour), 3),
		"12 Ocean Drive",
		"12 Ocean Drive",
		testCharges(t),
		"pi_3QX1",
		nil,
		status,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return restored
}

func testUnit(t *testing.T, status vehicle.UnitStatus) *vehicle.Unit {
	t.Helper()
	unit, err := vehicle.RestoreUnit(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"B 1234 XY",
		"JT2BF22K1W0123456",
		2022,
		42000,
		status,
	)
	require.NoError(t, err)
	return unit
}

func testHandoverRun(t *testing.T, status delivery.Status, driverID *kernel.UUID) *delivery.Delivery {
	t.Helper()
	run, err := delivery.RestoreDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		driverID,
		delivery.DirectionHandover,
		time.Now().Add(2*time.Hour),
		"12 Ocean Drive",
		status,
		nil,
		nil,
	)
	require.NoError(t, err)
	return run
}

func testActorAccount(t *testing.T, id kernel.UUID, role account.Role) *account.Account {
	t.Helper()
	restored, err := account.RestoreAccount(
		id,
		"sam@example.com",
		"$2a$10$hash",
		"Sam Carter",
		role,
		true,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return restored
}

func testIdleCart(t *testing.T, status cart.Status, phone string, idleFor time.Duration) *cart.Cart {
	t.Helper()
	lastActivity := time.Now().UTC().Add(-idleFor)
	restored, err := cart.RestoreCart(
		kernel.NewUUID(),
		nil,
		"sam@example.com",
		phone,
		kernel.NewUUID(),
		testPeriod(t, time.Now().Add(96*time.Hour), 3),
		"12 Ocean Drive",
		"12 Ocean Drive",
		testCharges(t),
		status,
		lastActivity,
		lastActivity,
	)
	require.NoError(t, err)
	return restored
}

func testDeposit(t *testing.T, bookingID kernel.UUID, held int64) *deposit.Deposit {
	t.Helper()
	restored, err := deposit.NewDeposit(kernel.NewUUID(), bookingID, testMoney(t, held))
	require.NoError(t, err)
	return restored
}
