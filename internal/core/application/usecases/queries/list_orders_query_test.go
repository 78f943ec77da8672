package queries_test

import (
	"testing"
	"time"

	"supplyline/internal/core/application/usecases/queries"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery_Valid(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewListOrdersQuery(
		[]string{"pending", "approved"}, "Uttara", "ORD-00", &from, &to, 2, 10)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Equal(t, []order.Status{order.StatusPending, order.StatusApproved}, query.Statuses())
	assert.Equal(t, "Uttara", query.Area())
	assert.Equal(t, "ORD-00", query.Search())
	require.NotNil(t, query.StartDate())
	assert.Equal(t, from, *query.StartDate())
	require.NotNil(t, query.EndDate())
	assert.Equal(t, to, *query.EndDate())
	assert.Equal(t, 2, query.Page())
	assert.Equal(t, 10, query.PageSize())
}

func TestNewListOrdersQuery_NoFilters(t *testing.T) {
	query, err := queries.NewListOrdersQuery(nil, "", "", nil, nil, 0, 0)
	require.NoError(t, err)

	assert.Empty(t, query.Statuses())
	assert.Nil(t, query.StartDate())
	assert.Nil(t, query.EndDate())
	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 20, query.PageSize())
}

func TestNewListOrdersQuery_ClampsPageSize(t *testing.T) {
	query, err := queries.NewListOrdersQuery(nil, "", "", nil, nil, 1, 5000)
	require.NoError(t, err)
	assert.Equal(t, 100, query.PageSize())
}

func TestNewListOrdersQuery_UnknownStatus(t *testing.T) {
	_, err := queries.NewListOrdersQuery([]string{"shipped"}, "", "", nil, nil, 1, 20)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListOrdersQuery_InvertedDateRange(t *testing.T) {
	from := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	_, err := queries.NewListOrdersQuery(nil, "", "", &from, &to, 1, 20)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestListOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}
