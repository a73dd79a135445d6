package queries

import (
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/errs"
	"quickbite/internal/pkg/guard"
)

var ErrListAvailableDeliveriesQueryIsNotConstructed = errors.New(
	"ListAvailableDeliveriesQuery must be created via NewListAvailableDeliveriesQuery constructor",
)

// ListAvailableDeliveriesQuery lists deliveries that are ASSIGNED and have no
// partner yet, oldest first. Callers are expected to poll.
//
// The partner-scoped form returns nothing while that partner is offline.
//
// Example:
//
//	query := NewListAvailableDeliveriesQuery()
//	deliveries, err := handler.Handle(ctx, query)
type ListAvailableDeliveriesQuery struct {
	partnerID *kernel.UUID
	guard     guard.ConstructorGuard
}

// NewListAvailableDeliveriesQuery lists every available delivery.
func NewListAvailableDeliveriesQuery() ListAvailableDeliveriesQuery {
	return ListAvailableDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// NewListAvailableDeliveriesForPartnerQuery lists available deliveries as
// seen by partnerID.
func NewListAvailableDeliveriesForPartnerQuery(partnerID kernel.UUID) (ListAvailableDeliveriesQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return ListAvailableDeliveriesQuery{}, errs.NewValueIsRequiredErrorWithCause("partner id", err)
	}
	return ListAvailableDeliveriesQuery{partnerID: &partnerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAvailableDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableDeliveriesQueryIsNotConstructed)
}

// PartnerID returns nil for the unscoped form.
func (q ListAvailableDeliveriesQuery) PartnerID() *kernel.UUID {
	return q.partnerID
}
