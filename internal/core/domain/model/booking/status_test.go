package booking_test

import (
	"fmt"
	"testing"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(booking.Unknown))
		assert.Equal(t, 1, int(booking.Pending))
		assert.Equal(t, 2, int(booking.Confirmed))
		assert.Equal(t, 3, int(booking.Active))
		assert.Equal(t, 4, int(booking.Completed))
		assert.Equal(t, 5, int(booking.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []booking.Status{
			booking.Pending,
			booking.Confirmed,
			booking.Active,
			booking.Completed,
			booking.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := booking.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []booking.Status{
			booking.Status(-1),
			booking.Status(6),
			booking.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   booking.Status
			expected string
		}{
			{booking.Pending, "Pending"},
			{booking.Confirmed, "Confirmed"},
			{booking.Active, "Active"},
			{booking.Completed, "Completed"},
			{booking.Cancelled, "Cancelled"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.status.String())
			})
		}
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", booking.Unknown.String())
		assert.Equal(t, "Unknown", booking.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round trip all valid statuses", func(t *testing.T) {
		validStatuses := []booking.Status{
			booking.Pending,
			booking.Confirmed,
			booking.Active,
			booking.Completed,
			booking.Cancelled,
		}

		for _, status := range validStatuses {
			parsed, err := booking.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := booking.StatusFromString("Shipped")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("Confirm", func(t *testing.T) {
		t.Run("should confirm pending booking", func(t *testing.T) {
			newStatus, err := booking.Pending.Confirm()

			require.NoError(t, err)
			assert.Equal(t, booking.Confirmed, newStatus)
		})

		t.Run("should reject confirm from other statuses", func(t *testing.T) {
			for _, status := range []booking.Status{booking.Confirmed, booking.Active, booking.Completed, booking.Cancelled} {
				_, err := status.Confirm()
				require.Error(t, err, "confirm from %s should fail", status)
			}
		})
	})

	t.Run("Activate", func(t *testing.T) {
		t.Run("should activate confirmed booking", func(t *testing.T) {
			newStatus, err := booking.Confirmed.Activate()

			require.NoError(t, err)
			assert.Equal(t, booking.Active, newStatus)
		})

		t.Run("should reject activate from other statuses", func(t *testing.T) {
			for _, status := range []booking.Status{booking.Pending, booking.Active, booking.Completed, booking.Cancelled} {
				_, err := status.Activate()
				require.Error(t, err, "activate from %s should fail", status)
			}
		})
	})

	t.Run("Complete", func(t *testing.T) {
		t.Run("should complete active booking", func(t *testing.T) {
			newStatus, err := booking.Active.Complete()

			require.NoError(t, err)
			assert.Equal(t, booking.Completed, newStatus)
		})

		t.Run("should reject complete from other statuses", func(t *testing.T) {
			for _, status := range []booking.Status{booking.Pending, booking.Confirmed, booking.Completed, booking.Cancelled} {
				_, err := status.Complete()
				require.Error(t, err, "complete from %s should fail", status)
			}
		})
	})

	t.Run("Cancel", func(t *testing.T) {
		t.Run("should cancel pending booking", func(t *testing.T) {
			newStatus, err := booking.Pending.Cancel()

			require.NoError(t, err)
			assert.Equal(t, booking.Cancelled, newStatus)
		})

		t.Run("should cancel confirmed booking", func(t *testing.T) {
			newStatus, err := booking.Confirmed.Cancel()

			require.NoError(t, err)
			assert.Equal(t, booking.Cancelled, newStatus)
		})

		t.Run("should reject cancel of active rental", func(t *testing.T) {
			_, err := booking.Active.Cancel()
			require.Error(t, err)
		})

		t.Run("should reject cancel of final statuses", func(t *testing.T) {
			for _, status := range []booking.Status{booking.Completed, booking.Cancelled} {
				_, err := status.Cancel()
				require.Error(t, err, "cancel from %s should fail", status)
			}
		})
	})
}

func TestStatus_IsFinal(t *testing.T) {
	testCases := []struct {
		status booking.Status
		final  bool
	}{
		{booking.Pending, false},
		{booking.Confirmed, false},
		{booking.Active, false},
		{booking.Completed, true},
		{booking.Cancelled, true},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s final=%v", tc.status, tc.final), func(t *testing.T) {
			assert.Equal(t, tc.final, tc.status.IsFinal())
		})
	}
}

func TestStatus_ValidateCanHaveUnit(t *testing.T) {
	t.Run("pending booking must not have a unit", func(t *testing.T) {
		require.NoError(t, booking.Pending.ValidateCanHaveUnit(false))
		require.Error(t, booking.Pending.ValidateCanHaveUnit(true))
	})

	t.Run("confirmed and later statuses require a unit", func(t *testing.T) {
		for _, status := range []booking.Status{booking.Confirmed, booking.Active, booking.Completed} {
			require.NoError(t, status.ValidateCanHaveUnit(true), "%s with unit", status)
			require.Error(t, status.ValidateCanHaveUnit(false), "%s without unit", status)
		}
	})

	t.Run("cancelled booking may have either", func(t *testing.T) {
		require.NoError(t, booking.Cancelled.ValidateCanHaveUnit(true))
		require.NoError(t, booking.Cancelled.ValidateCanHaveUnit(false))
	})
}
