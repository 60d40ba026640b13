package queries_test

import (
	"testing"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListDeliveriesQuery_NoFilter(t *testing.T) {
	query, err := queries.NewListDeliveriesQuery("")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Empty(t, query.Status())
}

func TestNewListDeliveriesQuery_ValidStatus(t *testing.T) {
	query, err := queries.NewListDeliveriesQuery("EnRoute")
	require.NoError(t, err)
	assert.Equal(t, "EnRoute", query.Status())
}

func TestNewListDeliveriesQuery_UnknownStatusRejected(t *testing.T) {
	_, err := queries.NewListDeliveriesQuery("Teleporting")
	require.Error(t, err)
}

func TestListDeliveriesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListDeliveriesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListDeliveriesQueryIsNotConstructed)
}
