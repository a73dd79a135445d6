package queries

import (
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/pkg/errs"
	"quickbite/internal/pkg/guard"
)

var ErrListRestaurantOrdersQueryIsNotConstructed = errors.New(
	"ListRestaurantOrdersQuery must be created via NewListRestaurantOrdersQuery constructor",
)

// ListRestaurantOrdersQuery is a restaurant's order board, newest first,
// optionally narrowed to some statuses.
//
// Example:
//
//	query, err := NewListRestaurantOrdersQuery(restaurantID, status.OrderPending, status.OrderPreparing)
type ListRestaurantOrdersQuery struct {
	restaurantID kernel.UUID
	statuses     []status.OrderStatus
	guard        guard.ConstructorGuard
}

func NewListRestaurantOrdersQuery(
	restaurantID kernel.UUID,
	statuses ...status.OrderStatus,
) (ListRestaurantOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ListRestaurantOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return ListRestaurantOrdersQuery{}, err
		}
	}
	return ListRestaurantOrdersQuery{
		restaurantID: restaurantID,
		statuses:     append([]status.OrderStatus(nil), statuses...),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ListRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantOrdersQueryIsNotConstructed)
}

func (q ListRestaurantOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Statuses is empty when every status is wanted.
func (q ListRestaurantOrdersQuery) Statuses() []status.OrderStatus {
	return append([]status.OrderStatus(nil), q.statuses...)
}
