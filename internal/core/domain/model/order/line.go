package order

import (
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/errs"
)

// Snapshot is one priced cart line handed to NewOrder at checkout.
type Snapshot struct {
	MenuItemID   kernel.UUID
	RestaurantID kernel.UUID
	Quantity     int
	UnitPrice    kernel.Money
}

// Line is an immutable order line. LineTotal is UnitPrice × Quantity at the
// time the order was placed.
type Line struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	lineTotal  kernel.Money
}

func newLine(menuItemID kernel.UUID, qty int, unitPrice kernel.Money) (Line, error) {
	if err := menuItemID.Validate(); err != nil {
		return Line{}, errs.NewValueIsRequiredErrorWithCause("menu item id", err)
	}
	total, err := unitPrice.MulQuantity(qty)
	if err != nil {
		return Line{}, err
	}
	return Line{menuItemID: menuItemID, quantity: qty, unitPrice: unitPrice, lineTotal: total}, nil
}

// RestoreLine rebuilds a stored line, recomputing the line total.
func RestoreLine(menuItemID kernel.UUID, qty int, unitPrice kernel.Money) (Line, error) {
	return newLine(menuItemID, qty, unitPrice)
}

func (l Line) MenuItemID() kernel.UUID { return l.menuItemID }
func (l Line) Quantity() int           { return l.quantity }
func (l Line) UnitPrice() kernel.Money { return l.unitPrice }
func (l Line) LineTotal() kernel.Money { return l.lineTotal }
