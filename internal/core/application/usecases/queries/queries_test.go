package queries_test

import (
	"testing"
	"time"

	"quickbite/internal/core/application/usecases/queries"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		want     error
	}{
		{"available deliveries", queries.ListAvailableDeliveriesQuery{}.Validate, queries.ErrListAvailableDeliveriesQueryIsNotConstructed},
		{"active deliveries", queries.GetActiveDeliveriesQuery{}.Validate, queries.ErrGetActiveDeliveriesQueryIsNotConstructed},
		{"earnings", queries.GetEarningsSinceQuery{}.Validate, queries.ErrGetEarningsSinceQueryIsNotConstructed},
		{"customer orders", queries.ListCustomerOrdersQuery{}.Validate, queries.ErrListCustomerOrdersQueryIsNotConstructed},
		{"restaurant orders", queries.ListRestaurantOrdersQuery{}.Validate, queries.ErrListRestaurantOrdersQueryIsNotConstructed},
		{"order detail", queries.GetOrderDetailQuery{}.Validate, queries.ErrGetOrderDetailQueryIsNotConstructed},
		{"owned restaurant", queries.GetOwnedRestaurantQuery{}.Validate, queries.ErrGetOwnedRestaurantQueryIsNotConstructed},
		{"stale deliveries", queries.ListStaleDeliveriesQuery{}.Validate, queries.ErrListStaleDeliveriesQueryIsNotConstructed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.validate(), tt.want)
		})
	}
}

func TestQueries_RequireIDs(t *testing.T) {
	var empty kernel.UUID

	_, err := queries.NewListAvailableDeliveriesForPartnerQuery(empty)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetActiveDeliveriesQuery(empty)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewListCustomerOrdersQuery(empty)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewListRestaurantOrdersQuery(empty)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetOrderDetailQuery(kernel.NewUUID(), empty)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetOwnedRestaurantQuery(empty)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewListStaleDeliveriesQuery(time.Time{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewListAvailableDeliveriesQuery(t *testing.T) {
	unscoped := queries.NewListAvailableDeliveriesQuery()
	require.NoError(t, unscoped.Validate())
	assert.Nil(t, unscoped.PartnerID())

	partnerID := kernel.NewUUID()
	scoped, err := queries.NewListAvailableDeliveriesForPartnerQuery(partnerID)
	require.NoError(t, err)
	require.NotNil(t, scoped.PartnerID())
	assert.True(t, partnerID.IsEqual(*scoped.PartnerID()))
}

func TestNewGetEarningsSinceQuery(t *testing.T) {
	_, err := queries.NewGetEarningsSinceQuery(kernel.NewUUID(), time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	since := time.Date(2025, 3, 14, 8, 0, 0, 0, time.FixedZone("UTC+2", 2*60*60))
	query, err := queries.NewGetEarningsSinceQuery(kernel.NewUUID(), since)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, query.Since().Location())
	assert.True(t, since.Equal(query.Since()))
}

func TestStartOfDay(t *testing.T) {
	now := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), queries.StartOfDay(now))
}

func TestNewListRestaurantOrdersQuery_Statuses(t *testing.T) {
	_, err := queries.NewListRestaurantOrdersQuery(kernel.NewUUID(), status.OrderStatus("LOST"))
	require.Error(t, err)

	query, err := queries.NewListRestaurantOrdersQuery(kernel.NewUUID(), status.OrderPending, status.OrderPreparing)
	require.NoError(t, err)
	statuses := query.Statuses()
	assert.Equal(t, []status.OrderStatus{status.OrderPending, status.OrderPreparing}, statuses)

	statuses[0] = status.OrderCancelled
	assert.Equal(t, status.OrderPending, query.Statuses()[0], "Statuses returns a copy")
}
