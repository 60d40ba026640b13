package queries_test

import (
	"testing"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListBookingsQuery_Defaults(t *testing.T) {
	query, err := queries.NewListBookingsQuery("", time.Time{}, time.Time{}, 0, 0)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 20, query.PageSize())
	assert.Empty(t, query.Status())
}

func TestNewListBookingsQuery_PageSizeCapped(t *testing.T) {
	query, err := queries.NewListBookingsQuery("", time.Time{}, time.Time{}, 3, 1000)
	require.NoError(t, err)

	assert.Equal(t, 3, query.Page())
	assert.Equal(t, 100, query.PageSize())
}

func TestNewListBookingsQuery_ValidStatusFilter(t *testing.T) {
	query, err := queries.NewListBookingsQuery("Confirmed", time.Time{}, time.Time{}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, "Confirmed", query.Status())
}

func TestNewListBookingsQuery_UnknownStatusRejected(t *testing.T) {
	_, err := queries.NewListBookingsQuery("Shipped", time.Time{}, time.Time{}, 1, 20)
	require.Error(t, err)
}

func TestListBookingsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListBookingsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListBookingsQueryIsNotConstructed)
}
