package queries_test

import (
	"testing"
	"time"

	"supplyline/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOverdueOrdersQuery_Valid(t *testing.T) {
	asOf := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	query := queries.NewGetOverdueOrdersQuery(asOf)
	require.NoError(t, query.Validate())
	assert.Equal(t, asOf, query.AsOf())
}

func TestGetOverdueOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOverdueOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOverdueOrdersQueryIsNotConstructed)
}
