package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
)

func TestNewMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		currency string
		wantErr  bool
		errType  error
	}{
		{
			name:     "valid money",
			amount:   8900,
			currency: "USD",
			wantErr:  false,
		},
		{
			name:     "valid zero amount",
			amount:   0,
			currency: "EUR",
			wantErr:  false,
		},
		{
			name:     "negative amount",
			amount:   -1,
			currency: "USD",
			wantErr:  true,
			errType:  &errs.ValueIsOutOfRangeError{},
		},
		{
			name:     "currency code too short",
			amount:   100,
			currency: "US",
			wantErr:  true,
			errType:  &errs.ValueIsInvalidError{},
		},
		{
			name:     "currency code too long",
			amount:   100,
			currency: "USDT",
			wantErr:  true,
			errType:  &errs.ValueIsInvalidError{},
		},
		{
			name:     "currency code lowercase",
			amount:   100,
			currency: "usd",
			wantErr:  true,
			errType:  &errs.ValueIsInvalidError{},
		},
		{
			name:     "both amount and currency invalid",
			amount:   -100,
			currency: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			money, err := kernel.NewMoney(tt.amount, tt.currency)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Zero(t, money)
				if tt.errType != nil {
					assert.ErrorAs(t, err, &tt.errType)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.amount, money.Amount())
				assert.Equal(t, tt.currency, money.Currency())
				assert.NoError(t, money.Validate())
			}
		})
	}
}

func TestZero(t *testing.T) {
	t.Run("should create zero amount in given currency", func(t *testing.T) {
		money, err := kernel.Zero("USD")

		require.NoError(t, err)
		assert.True(t, money.IsZero())
		assert.Equal(t, "USD", money.Currency())
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("valid money", func(t *testing.T) {
		money, err := kernel.NewMoney(100, "USD")
		require.NoError(t, err)
		assert.NoError(t, money.Validate())
	})

	t.Run("zero value money", func(t *testing.T) {
		var money kernel.Money
		err := money.Validate()
		assert.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should add amounts of the same currency", func(t *testing.T) {
		a, _ := kernel.NewMoney(8900, "USD")
		b, _ := kernel.NewMoney(2500, "USD")

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, int64(11400), sum.Amount())
		assert.Equal(t, "USD", sum.Currency())
	})

	t.Run("should reject currency mismatch", func(t *testing.T) {
		a, _ := kernel.NewMoney(8900, "USD")
		b, _ := kernel.NewMoney(2500, "EUR")

		_, err := a.Add(b)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrCurrencyMismatch, err)
	})

	t.Run("should reject zero value operand", func(t *testing.T) {
		a, _ := kernel.NewMoney(8900, "USD")
		var b kernel.Money

		_, err := a.Add(b)

		assert.Error(t, err)
	})
}

func TestMoney_Sub(t *testing.T) {
	t.Run("should subtract smaller amount", func(t *testing.T) {
		a, _ := kernel.NewMoney(50000, "USD")
		b, _ := kernel.NewMoney(12000, "USD")

		diff, err := a.Sub(b)

		require.NoError(t, err)
		assert.Equal(t, int64(38000), diff.Amount())
	})

	t.Run("should subtract the full amount to zero", func(t *testing.T) {
		a, _ := kernel.NewMoney(50000, "USD")

		diff, err := a.Sub(a)

		require.NoError(t, err)
		assert.True(t, diff.IsZero())
	})

	t.Run("should reject amount larger than available", func(t *testing.T) {
		a, _ := kernel.NewMoney(10000, "USD")
		b, _ := kernel.NewMoney(10001, "USD")

		_, err := a.Sub(b)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrInsufficientAmount, err)
	})

	t.Run("should reject currency mismatch", func(t *testing.T) {
		a, _ := kernel.NewMoney(10000, "USD")
		b, _ := kernel.NewMoney(100, "EUR")

		_, err := a.Sub(b)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrCurrencyMismatch, err)
	})
}

func TestMoney_MultiplyDays(t *testing.T) {
	t.Run("should multiply daily rate by billed days", func(t *testing.T) {
		rate, _ := kernel.NewMoney(8900, "USD")

		charge, err := rate.MultiplyDays(7)

		require.NoError(t, err)
		assert.Equal(t, int64(62300), charge.Amount())
	})

	t.Run("should allow zero days", func(t *testing.T) {
		rate, _ := kernel.NewMoney(8900, "USD")

		charge, err := rate.MultiplyDays(0)

		require.NoError(t, err)
		assert.True(t, charge.IsZero())
	})

	t.Run("should reject negative days", func(t *testing.T) {
		rate, _ := kernel.NewMoney(8900, "USD")

		_, err := rate.MultiplyDays(-1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoney_Percent(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		percent int64
		want    int64
	}{
		{name: "quarter of even amount", amount: 10000, percent: 25, want: 2500},
		{name: "rounds half up", amount: 101, percent: 50, want: 51},
		{name: "zero percent", amount: 10000, percent: 0, want: 0},
		{name: "hundred percent", amount: 62300, percent: 100, want: 62300},
		{name: "ten percent discount base", amount: 62300, percent: 10, want: 6230},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			money, err := kernel.NewMoney(tt.amount, "USD")
			require.NoError(t, err)

			got, err := money.Percent(tt.percent)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Amount())
		})
	}

	t.Run("should reject percent above 100", func(t *testing.T) {
		money, _ := kernel.NewMoney(10000, "USD")

		_, err := money.Percent(101)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("equal values", func(t *testing.T) {
		a, _ := kernel.NewMoney(100, "USD")
		b, _ := kernel.NewMoney(100, "USD")

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(100, "USD")
		b, _ := kernel.NewMoney(200, "USD")

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("different currencies", func(t *testing.T) {
		a, _ := kernel.NewMoney(100, "USD")
		b, _ := kernel.NewMoney(100, "EUR")

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("zero value operand", func(t *testing.T) {
		a, _ := kernel.NewMoney(100, "USD")
		var b kernel.Money

		_, err := a.IsEqual(b)

		assert.Error(t, err)
	})
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{name: "whole units", amount: 8900, want: "89.00 USD"},
		{name: "units with cents", amount: 12345, want: "123.45 USD"},
		{name: "cents only", amount: 5, want: "0.05 USD"},
		{name: "zero", amount: 0, want: "0.00 USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			money, err := kernel.NewMoney(tt.amount, "USD")
			require.NoError(t, err)
			assert.Equal(t, tt.want, money.String())
		})
	}
}
