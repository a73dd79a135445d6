package queries

import (
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/errs"
	"quickbite/internal/pkg/guard"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery lists the deliveries a partner currently carries:
// ACCEPTED or PICKED_UP.
type GetActiveDeliveriesQuery struct {
	partnerID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetActiveDeliveriesQuery(partnerID kernel.UUID) (GetActiveDeliveriesQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetActiveDeliveriesQuery{}, errs.NewValueIsRequiredErrorWithCause("partner id", err)
	}
	return GetActiveDeliveriesQuery{partnerID: partnerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

func (q GetActiveDeliveriesQuery) PartnerID() kernel.UUID {
	return q.partnerID
}
