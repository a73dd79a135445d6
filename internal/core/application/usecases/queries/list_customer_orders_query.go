package queries

import (
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/errs"
	"quickbite/internal/pkg/guard"
)

var ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
)

// ListCustomerOrdersQuery is a customer's order history, newest first.
type ListCustomerOrdersQuery struct {
	customerID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewListCustomerOrdersQuery(customerID kernel.UUID) (ListCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListCustomerOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	return ListCustomerOrdersQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

func (q ListCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}
