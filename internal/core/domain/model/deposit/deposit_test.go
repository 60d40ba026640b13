package deposit_test

import (
	"testing"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/deposit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount, kernel.DefaultCurrency)
	require.NoError(t, err)
	return m
}

func validDeposit(t *testing.T) *deposit.Deposit {
	t.Helper()
	d, err := deposit.NewDeposit(kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, 50000))
	require.NoError(t, err)
	return d
}

func TestNewDeposit(t *testing.T) {
	t.Run("should create open deposit with empty ledger", func(t *testing.T) {
		d := validDeposit(t)

		assert.False(t, d.IsSettled())
		assert.Empty(t, d.Entries())
		assert.Equal(t, int64(50000), d.Remaining().Amount())
		assert.NoError(t, d.Validate())
	})

	t.Run("should reject zero held amount", func(t *testing.T) {
		_, err := deposit.NewDeposit(kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, 0))

		require.Error(t, err)
	})

	t.Run("should reject invalid IDs", func(t *testing.T) {
		_, err := deposit.NewDeposit(kernel.UUID{}, kernel.NewUUID(), mustMoney(t, 50000))
		require.Error(t, err)

		_, err = deposit.NewDeposit(kernel.NewUUID(), kernel.UUID{}, mustMoney(t, 50000))
		require.Error(t, err)
	})

	t.Run("zero value deposit fails validation", func(t *testing.T) {
		var d deposit.Deposit
		assert.Error(t, d.Validate())
		assert.Error(t, (*deposit.Deposit)(nil).Validate())
	})
}

func TestDeposit_Ledger(t *testing.T) {
	t.Run("should track remaining across releases and withholdings", func(t *testing.T) {
		d := validDeposit(t)

		require.NoError(t, d.Withhold(mustMoney(t, 12000), "door scratch", "agent@example.com"))
		require.NoError(t, d.Release(mustMoney(t, 8000), "partial release", "agent@example.com"))

		assert.Equal(t, int64(30000), d.Remaining().Amount())
		assert.Equal(t, int64(12000), d.Withheld().Amount())
		assert.Equal(t, int64(8000), d.Released().Amount())
		assert.Len(t, d.Entries(), 2)
	})

	t.Run("should reject entry exceeding remaining deposit", func(t *testing.T) {
		d := validDeposit(t)
		require.NoError(t, d.Withhold(mustMoney(t, 40000), "damage", "agent@example.com"))

		err := d.Release(mustMoney(t, 20000), "too much", "agent@example.com")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrInsufficientAmount)
		assert.Equal(t, int64(10000), d.Remaining().Amount(), "rejected entry must not change the ledger")
	})

	t.Run("should reject zero amount entry", func(t *testing.T) {
		d := validDeposit(t)

		require.Error(t, d.Release(mustMoney(t, 0), "nothing", "agent@example.com"))
	})

	t.Run("should reject entry without actor", func(t *testing.T) {
		d := validDeposit(t)

		require.Error(t, d.Withhold(mustMoney(t, 1000), "damage", ""))
	})

	t.Run("entries are detached from the aggregate", func(t *testing.T) {
		d := validDeposit(t)
		require.NoError(t, d.Release(mustMoney(t, 1000), "", "agent@example.com"))

		entries := d.Entries()
		entries[0] = deposit.Entry{}

		assert.Equal(t, deposit.KindRelease, d.Entries()[0].Kind())
	})
}

func TestDeposit_Settle(t *testing.T) {
	t.Run("should settle once remaining is zero", func(t *testing.T) {
		d := validDeposit(t)
		require.NoError(t, d.Withhold(mustMoney(t, 12000), "damage", "agent@example.com"))
		require.NoError(t, d.Release(mustMoney(t, 38000), "remainder", "agent@example.com"))

		require.NoError(t, d.Settle())

		assert.True(t, d.IsSettled())
	})

	t.Run("should reject settling with remaining amount", func(t *testing.T) {
		d := validDeposit(t)

		err := d.Settle()

		require.Error(t, err)
		assert.ErrorIs(t, err, deposit.ErrDepositNotExhausted)
	})

	t.Run("should reject entries after settlement", func(t *testing.T) {
		d := validDeposit(t)
		require.NoError(t, d.Release(mustMoney(t, 50000), "full release", "agent@example.com"))
		require.NoError(t, d.Settle())

		err := d.Withhold(mustMoney(t, 1), "late damage", "agent@example.com")

		require.Error(t, err)
		assert.ErrorIs(t, err, deposit.ErrDepositAlreadySettled)
	})

	t.Run("should reject double settlement", func(t *testing.T) {
		d := validDeposit(t)
		require.NoError(t, d.Release(mustMoney(t, 50000), "full release", "agent@example.com"))
		require.NoError(t, d.Settle())

		assert.ErrorIs(t, d.Settle(), deposit.ErrDepositAlreadySettled)
	})
}

func TestRestoreDeposit(t *testing.T) {
	t.Run("should restore deposit with ledger", func(t *testing.T) {
		id := kernel.NewUUID()
		bookingID := kernel.NewUUID()
		entry, err := deposit.RestoreEntry(
			deposit.KindWithhold, mustMoney(t, 12000), "damage", "agent@example.com", time.Now())
		require.NoError(t, err)

		d, err := deposit.RestoreDeposit(id, bookingID, mustMoney(t, 50000), []deposit.Entry{entry}, false)

		require.NoError(t, err)
		assert.True(t, id.IsEqual(d.ID()))
		assert.True(t, bookingID.IsEqual(d.BookingID()))
		assert.Equal(t, int64(38000), d.Remaining().Amount())
	})

	t.Run("should reject ledger exceeding held amount", func(t *testing.T) {
		first, err := deposit.RestoreEntry(
			deposit.KindRelease, mustMoney(t, 40000), "", "agent@example.com", time.Now())
		require.NoError(t, err)
		second, err := deposit.RestoreEntry(
			deposit.KindWithhold, mustMoney(t, 20000), "", "agent@example.com", time.Now())
		require.NoError(t, err)

		_, err = deposit.RestoreDeposit(
			kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, 50000),
			[]deposit.Entry{first, second}, false)

		require.Error(t, err)
	})
}

func TestEntryKindFromString(t *testing.T) {
	t.Run("should parse valid kinds", func(t *testing.T) {
		kind, err := deposit.EntryKindFromString("Release")
		require.NoError(t, err)
		assert.Equal(t, deposit.KindRelease, kind)

		kind, err = deposit.EntryKindFromString("Withhold")
		require.NoError(t, err)
		assert.Equal(t, deposit.KindWithhold, kind)
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := deposit.EntryKindFromString("Refund")
		require.Error(t, err)

		_, err = deposit.EntryKindFromString("Unknown")
		require.Error(t, err)
	})
}
