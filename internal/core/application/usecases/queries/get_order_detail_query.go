package queries

import (
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/errs"
	"quickbite/internal/pkg/guard"
)

var ErrGetOrderDetailQueryIsNotConstructed = errors.New(
	"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
)

// GetOrderDetailQuery loads one order with its lines. The viewer must be
// the ordering customer or the fulfilling restaurant.
type GetOrderDetailQuery struct {
	orderID  kernel.UUID
	viewerID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetOrderDetailQuery(orderID, viewerID kernel.UUID) (GetOrderDetailQuery, error) {
	if err := errors.Join(
		requiredID("order id", orderID),
		requiredID("viewer id", viewerID),
	); err != nil {
		return GetOrderDetailQuery{}, err
	}
	return GetOrderDetailQuery{orderID: orderID, viewerID: viewerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

func (q GetOrderDetailQuery) OrderID() kernel.UUID  { return q.orderID }
func (q GetOrderDetailQuery) ViewerID() kernel.UUID { return q.viewerID }

// OrderLineView is a priced line as it was snapshotted at checkout.
type OrderLineView struct {
	MenuItemID   kernel.UUID
	MenuItemName string
	Quantity     int
	UnitPrice    kernel.Money
	LineTotal    kernel.Money
}

type OrderDetail struct {
	OrderSummary
	Lines []OrderLineView
}

func requiredID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
