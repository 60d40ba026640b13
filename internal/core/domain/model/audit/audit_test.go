package audit_test

import (
	"testing"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/audit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	t.Run("should create entry with value snapshots", func(t *testing.T) {
		entry, err := audit.NewEntry(
			kernel.NewUUID(), kernel.NewUUID(),
			"booking.confirm", "booking", kernel.NewUUID().String(),
			map[string]string{"status": "Pending"},
			map[string]string{"status": "Confirmed"})

		require.NoError(t, err)
		assert.Equal(t, "booking.confirm", entry.Action())
		assert.Equal(t, "Pending", entry.OldValues()["status"])
		assert.Equal(t, "Confirmed", entry.NewValues()["status"])
		assert.False(t, entry.At().IsZero())
		assert.NoError(t, entry.Validate())
	})

	t.Run("should allow nil snapshots for create actions", func(t *testing.T) {
		entry, err := audit.NewEntry(
			kernel.NewUUID(), kernel.NewUUID(),
			"category.create", "category", kernel.NewUUID().String(), nil, nil)

		require.NoError(t, err)
		assert.Nil(t, entry.OldValues())
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		_, err := audit.NewEntry(kernel.NewUUID(), kernel.NewUUID(), "", "booking", "id", nil, nil)
		require.Error(t, err)

		_, err = audit.NewEntry(kernel.NewUUID(), kernel.NewUUID(), "a", "", "id", nil, nil)
		require.Error(t, err)

		_, err = audit.NewEntry(kernel.NewUUID(), kernel.NewUUID(), "a", "booking", "", nil, nil)
		require.Error(t, err)

		_, err = audit.NewEntry(kernel.UUID{}, kernel.NewUUID(), "a", "booking", "id", nil, nil)
		require.Error(t, err)
	})

	t.Run("zero value entry fails validation", func(t *testing.T) {
		var e audit.Entry
		assert.Error(t, e.Validate())
		assert.Error(t, (*audit.Entry)(nil).Validate())
	})
}

func TestRestoreEntry(t *testing.T) {
	t.Run("should restore persisted entry", func(t *testing.T) {
		at := time.Now().Add(-time.Hour)

		entry, err := audit.RestoreEntry(
			kernel.NewUUID(), kernel.NewUUID(),
			"delivery.delivered", "delivery", kernel.NewUUID().String(),
			nil, map[string]string{"status": "Delivered"}, at)

		require.NoError(t, err)
		assert.Equal(t, at.UTC(), entry.At())
	})

	t.Run("should reject zero timestamp", func(t *testing.T) {
		_, err := audit.RestoreEntry(
			kernel.NewUUID(), kernel.NewUUID(),
			"delivery.delivered", "delivery", "id", nil, nil, time.Time{})

		require.Error(t, err)
	})
}
