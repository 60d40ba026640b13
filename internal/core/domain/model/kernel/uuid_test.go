package kernel_test

import (
	"testing"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid non-nil UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NotEmpty(t, id.String())
		assert.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should create distinct identifiers", func(t *testing.T) {
		bookingID := kernel.NewUUID()
		cartID := kernel.NewUUID()

		assert.NotEqual(t, bookingID.String(), cartID.String())
		assert.False(t, bookingID.IsEqual(cartID))
	})
}

func TestUUIDFromString(t *testing.T) {
	canonical := "7f9c24e8-3b12-4fef-91f0-5a6c85d4a1b0"

	t.Run("should parse canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(canonical)

		require.NoError(t, err)
		assert.Equal(t, canonical, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should parse braced form", func(t *testing.T) {
		id, err := kernel.UUIDFromString("{" + canonical + "}")

		require.NoError(t, err)
		assert.Equal(t, canonical, id.String())
	})

	t.Run("should parse urn prefixed form", func(t *testing.T) {
		id, err := kernel.UUIDFromString("urn:uuid:" + canonical)

		require.NoError(t, err)
		assert.Equal(t, canonical, id.String())
	})

	t.Run("should parse form without hyphens", func(t *testing.T) {
		id, err := kernel.UUIDFromString("7f9c24e83b124fef91f05a6c85d4a1b0")

		require.NoError(t, err)
		assert.Equal(t, canonical, id.String())
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		malformed := []string{
			"",
			"not-a-uuid",
			"7f9c24e8-3b12-4fef-91f0",
			"7f9c24e8-3b12-4fef-91f0-5a6c85d4a1b0-extra",
			"zzzc24e8-3b12-4fef-91f0-5a6c85d4a1b0",
			"7f9c24e8-3b12-4fef-91f0-5a6c85d4a1bg",
		}

		for _, input := range malformed {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "expected error for input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	canonical := "7f9c24e8-3b12-4fef-91f0-5a6c85d4a1b0"
	raw := uuid.MustParse(canonical)

	t.Run("should rebuild UUID from stored bytes", func(t *testing.T) {
		id, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.Equal(t, canonical, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should reject short byte slice", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x7f, 0x9c, 0x24})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_String(t *testing.T) {
	t.Run("should render the hyphenated canonical form", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
	})

	t.Run("should render the same string every time", func(t *testing.T) {
		id, err := kernel.UUIDFromString("7f9c24e8-3b12-4fef-91f0-5a6c85d4a1b0")
		require.NoError(t, err)

		assert.Equal(t, "7f9c24e8-3b12-4fef-91f0-5a6c85d4a1b0", id.String())
		assert.Equal(t, id.String(), id.String())
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("should expose the underlying uuid value", func(t *testing.T) {
		id := kernel.NewUUID()
		underlying := id.Bytes()

		assert.IsType(t, uuid.UUID{}, underlying)
		assert.Equal(t, id.String(), underlying.String())
	})

	t.Run("should be a copy, not a handle on the original", func(t *testing.T) {
		id := kernel.NewUUID()
		before := id.String()

		underlying := id.Bytes()
		for i := range underlying {
			underlying[i] = 0xFF
		}

		assert.Equal(t, before, id.String())
		assert.NoError(t, id.Validate())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("should match identifiers parsed from the same string", func(t *testing.T) {
		first, err := kernel.UUIDFromString("7f9c24e8-3b12-4fef-91f0-5a6c85d4a1b0")
		require.NoError(t, err)
		second, err := kernel.UUIDFromString("7f9c24e8-3b12-4fef-91f0-5a6c85d4a1b0")
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.True(t, second.IsEqual(first))
	})

	t.Run("should not match distinct identifiers", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.False(t, first.IsEqual(second))
		assert.False(t, second.IsEqual(first))
	})

	t.Run("should treat zero values as equal to each other", func(t *testing.T) {
		var first kernel.UUID
		var second kernel.UUID

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should accept a constructed UUID", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("should reject the zero value", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("should reject the parsed nil UUID", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}

func TestUUID_AsAggregateIdentifier(t *testing.T) {
	type Booking struct {
		ID kernel.UUID
	}

	t.Run("should work as an aggregate identifier field", func(t *testing.T) {
		confirmed := Booking{ID: kernel.NewUUID()}

		assert.NoError(t, confirmed.ID.Validate())
		assert.NotEmpty(t, confirmed.ID.String())
	})

	t.Run("should flag an identifier that was never set", func(t *testing.T) {
		var pending Booking

		assert.Error(t, pending.ID.Validate())
	})
}
