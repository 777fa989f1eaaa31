package queries_test

import (
	"testing"
	"time"

	"rental/internal/core/application/usecases/queries"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery("", "", nil, nil, "", 0, 0)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Empty(t, query.Status())
		assert.Empty(t, query.CPF())
		assert.Nil(t, query.From())
		assert.Nil(t, query.To())
		assert.Equal(t, "order_date", query.SortBy())
		assert.True(t, query.SortDesc())
		assert.Equal(t, 1, query.Page())
		assert.Equal(t, 20, query.PageSize())
	})

	t.Run("accepts all filters", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)

		query, err := queries.NewListOrdersQuery("Approved", "52998224725", &from, &to, "status", 2, 50)

		require.NoError(t, err)
		assert.Equal(t, "Approved", query.Status())
		assert.Equal(t, "52998224725", query.CPF())
		assert.Equal(t, &from, query.From())
		assert.Equal(t, &to, query.To())
		assert.Equal(t, "status", query.SortBy())
		assert.False(t, query.SortDesc())
		assert.Equal(t, 2, query.Page())
		assert.Equal(t, 50, query.PageSize())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery("Pending", "", nil, nil, "", 0, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects malformed cpf filter", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery("", "123", nil, nil, "", 0, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unknown sort key", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery("", "", nil, nil, "total_amount", 0, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects out of range paging", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery("", "", nil, nil, "", -1, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = queries.NewListOrdersQuery("", "", nil, nil, "", 0, 500)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.ListOrdersQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	})
}
