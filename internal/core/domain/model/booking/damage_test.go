package booking_test

import (
	"testing"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDamageReport(t *testing.T) {
	t.Run("should create report with photos", func(t *testing.T) {
		report, err := booking.NewDamageReport(
			kernel.NewUUID(), kernel.NewUUID(),
			"Scratch on the rear left door", booking.SeverityMinor,
			mustMoney(t, 12000), []string{"damages/b1/front.jpg"})

		require.NoError(t, err)
		assert.Equal(t, booking.SeverityMinor, report.Severity())
		assert.Len(t, report.PhotoKeys(), 1)
		assert.NoError(t, report.Validate())
	})

	t.Run("should reject zero charge", func(t *testing.T) {
		_, err := booking.NewDamageReport(
			kernel.NewUUID(), kernel.NewUUID(),
			"Scratch", booking.SeverityMinor, mustMoney(t, 0), nil)

		require.Error(t, err)
	})

	t.Run("should reject missing description or severity", func(t *testing.T) {
		_, err := booking.NewDamageReport(
			kernel.NewUUID(), kernel.NewUUID(), "", booking.SeverityMinor, mustMoney(t, 100), nil)
		require.Error(t, err)

		_, err = booking.NewDamageReport(
			kernel.NewUUID(), kernel.NewUUID(), "Dent", booking.SeverityUnknown, mustMoney(t, 100), nil)
		require.Error(t, err)
	})
}

func TestSeverityFromString(t *testing.T) {
	t.Run("should roundtrip valid severities", func(t *testing.T) {
		for _, severity := range []booking.Severity{
			booking.SeverityMinor, booking.SeverityModerate, booking.SeveritySevere,
		} {
			parsed, err := booking.SeverityFromString(severity.String())
			require.NoError(t, err)
			assert.Equal(t, severity, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := booking.SeverityFromString("Totaled")
		require.Error(t, err)
	})
}
