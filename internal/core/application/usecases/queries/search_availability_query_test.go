package queries_test

import (
	"testing"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchAvailabilityQuery_Valid(t *testing.T) {
	start := time.Now().UTC().Add(24 * time.Hour)

	query, err := queries.NewSearchAvailabilityQuery(start, start.Add(48*time.Hour))
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 2, query.Period().Days())
}

func TestNewSearchAvailabilityQuery_EndBeforeStart(t *testing.T) {
	start := time.Now().UTC().Add(24 * time.Hour)

	_, err := queries.NewSearchAvailabilityQuery(start, start.Add(-time.Hour))
	require.Error(t, err)
}

func TestSearchAvailabilityQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.SearchAvailabilityQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrSearchAvailabilityQueryIsNotConstructed)
}
