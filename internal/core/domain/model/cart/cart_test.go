package cart_test

import (
	"testing"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/cart"
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

func validQuote(t *testing.T) booking.Charges {
	t.Helper()
	charges, err := booking.NewCharges(
		mustMoney(t, 62300), mustMoney(t, 0), mustMoney(t, 2500),
		mustMoney(t, 64800), mustMoney(t, 50000))
	require.NoError(t, err)
	return charges
}

func validPeriod(t *testing.T) kernel.RentalPeriod {
	t.Helper()
	start := time.Now().Add(48 * time.Hour)
	period, err := kernel.NewRentalPeriod(start, start.Add(7*24*time.Hour))
	require.NoError(t, err)
	return period
}

func validCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(
		kernel.NewUUID(), nil, "jane@example.com", "",
		kernel.NewUUID(), validPeriod(t),
		"221B Baker Street", "742 Evergreen Terrace", validQuote(t))
	require.NoError(t, err)
	return c
}

func TestNewCart(t *testing.T) {
	t.Run("should create active cart", func(t *testing.T) {
		c := validCart(t)

		assert.Equal(t, cart.Active, c.Status())
		assert.Nil(t, c.CustomerID())
		assert.False(t, c.LastActivityAt().IsZero())
		assert.NoError(t, c.Validate())
	})

	t.Run("should accept phone-only contact", func(t *testing.T) {
		_, err := cart.NewCart(
			kernel.NewUUID(), nil, "", "+15551234567",
			kernel.NewUUID(), validPeriod(t),
			"221B Baker Street", "742 Evergreen Terrace", validQuote(t))

		require.NoError(t, err)
	})

	t.Run("should reject cart without contact", func(t *testing.T) {
		_, err := cart.NewCart(
			kernel.NewUUID(), nil, "", "",
			kernel.NewUUID(), validPeriod(t),
			"221B Baker Street", "742 Evergreen Terrace", validQuote(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, cart.ErrContactIsRequired)
	})

	t.Run("should reject empty addresses", func(t *testing.T) {
		_, err := cart.NewCart(
			kernel.NewUUID(), nil, "jane@example.com", "",
			kernel.NewUUID(), validPeriod(t),
			"", "742 Evergreen Terrace", validQuote(t))

		require.Error(t, err)
	})

	t.Run("zero value cart fails validation", func(t *testing.T) {
		var c cart.Cart
		assert.Error(t, c.Validate())
		assert.Error(t, (*cart.Cart)(nil).Validate())
	})
}

func TestCart_Update(t *testing.T) {
	t.Run("should update active cart and refresh activity", func(t *testing.T) {
		c := validCart(t)
		before := c.LastActivityAt()

		err := c.Update(validPeriod(t), "10 Downing Street", "742 Evergreen Terrace", validQuote(t))

		require.NoError(t, err)
		assert.Equal(t, "10 Downing Street", c.PickupAddress())
		assert.False(t, c.LastActivityAt().Before(before))
	})

	t.Run("should reject update after abandonment", func(t *testing.T) {
		c := validCart(t)
		require.NoError(t, c.Abandon())

		err := c.Update(validPeriod(t), "10 Downing Street", "742 Evergreen Terrace", validQuote(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, cart.ErrCartIsNotEditable)
	})
}

func TestCart_Transitions(t *testing.T) {
	t.Run("should convert active cart", func(t *testing.T) {
		c := validCart(t)

		require.NoError(t, c.Convert())

		assert.Equal(t, cart.Converted, c.Status())
	})

	t.Run("should convert abandoned cart on recovery", func(t *testing.T) {
		c := validCart(t)
		require.NoError(t, c.Abandon())

		require.NoError(t, c.Convert())

		assert.Equal(t, cart.Converted, c.Status())
	})

	t.Run("should expire only abandoned carts", func(t *testing.T) {
		c := validCart(t)

		require.Error(t, c.Expire())

		require.NoError(t, c.Abandon())
		require.NoError(t, c.Expire())
		assert.Equal(t, cart.Expired, c.Status())
	})

	t.Run("should reject transitions out of final statuses", func(t *testing.T) {
		c := validCart(t)
		require.NoError(t, c.Convert())

		assert.Error(t, c.Abandon())
		assert.Error(t, c.Convert())
		assert.True(t, c.Status().IsFinal())
	})
}

func TestCart_IdleSince(t *testing.T) {
	t.Run("should report idleness against a cutoff", func(t *testing.T) {
		customerID := kernel.NewUUID()
		c, err := cart.RestoreCart(
			kernel.NewUUID(), &customerID, "jane@example.com", "",
			kernel.NewUUID(), validPeriod(t),
			"221B Baker Street", "742 Evergreen Terrace", validQuote(t),
			cart.Active,
			time.Now().Add(-time.Hour),
			time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		assert.True(t, c.IdleSince(time.Now().Add(-30*time.Minute)))
		assert.False(t, c.IdleSince(time.Now().Add(-90*time.Minute)))
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should roundtrip valid statuses", func(t *testing.T) {
		for _, status := range []cart.Status{cart.Active, cart.Abandoned, cart.Converted, cart.Expired} {
			parsed, err := cart.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := cart.StatusFromString("Checkout")
		require.Error(t, err)
	})
}
