package cart

import (
	"errors"
	"fmt"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/errs"
	"quickbite/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned by Line.Validate for zero values.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is a cart entry for a single menu item. A cart never holds two lines
// for the same item.
type Line struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	guard      guard.ConstructorGuard
}

// NewLine creates a line with quantity ≥ 1.
func NewLine(id, menuItemID kernel.UUID, quantity int) (*Line, error) {
	l := &Line{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		l.setID(id),
		l.setMenuItemID(menuItemID),
		l.setQuantity(quantity),
	); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l *Line) ID() kernel.UUID         { return l.id }
func (l *Line) MenuItemID() kernel.UUID { return l.menuItemID }
func (l *Line) Quantity() int           { return l.quantity }

func (l *Line) increment(by int) error {
	return l.setQuantity(l.quantity + by)
}

// decrement lowers the quantity by one and reports whether the line is now empty.
func (l *Line) decrement() bool {
	l.quantity--
	return l.quantity <= 0
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menu item id", err)
	}
	l.menuItemID = id
	return nil
}

func (l *Line) setQuantity(qty int) error {
	if qty < 1 {
		return errs.NewValueIsOutOfRangeErrorWithCause("quantity", qty, 1, "unbounded",
			fmt.Errorf("%d is less than 1", qty))
	}
	l.quantity = qty
	return nil
}
