package cart

import (
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/errs"
	"quickbite/internal/pkg/guard"
)

var (
	// ErrCartIsNotConstructed is returned by Validate for zero values.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
	// ErrCartIsEmpty is returned at checkout for a cart without lines.
	ErrCartIsEmpty = errs.NewValueIsInvalidError("cart is empty")
)

// Cart is the aggregate root for a customer's pre-checkout selection.
//
// Business rules:
//   - one cart per customer
//   - at most one line per menu item; adding the same item merges quantities
//   - removing decrements by one and drops the line at zero
type Cart struct {
	id         kernel.UUID
	customerID kernel.UUID
	lines      []*Line
	guard      guard.ConstructorGuard
}

// NewCart creates an empty cart owned by customerID.
func NewCart(id, customerID kernel.UUID) (*Cart, error) {
	c := &Cart{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		c.setID(id),
		c.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCart rebuilds a cart loaded from storage.
func RestoreCart(id, customerID kernel.UUID, lines []*Line) (*Cart, error) {
	c, err := NewCart(id, customerID)
	if err != nil {
		return nil, err
	}
	seen := make(map[kernel.UUID]struct{}, len(lines))
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[l.menuItemID]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("cart lines",
				errors.New("duplicate menu item "+l.menuItemID.String()))
		}
		seen[l.menuItemID] = struct{}{}
	}
	c.lines = append(c.lines, lines...)
	return c, nil
}

func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

func (c *Cart) ID() kernel.UUID         { return c.id }
func (c *Cart) CustomerID() kernel.UUID { return c.customerID }

// Lines returns a copy of the line slice.
func (c *Cart) Lines() []*Line {
	out := make([]*Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddItem increments the line for menuItemID by qty, or appends a new line.
// The touched line is returned.
func (c *Cart) AddItem(menuItemID kernel.UUID, qty int) (*Line, error) {
	for _, l := range c.lines {
		if l.menuItemID.IsEqual(menuItemID) {
			if qty < 1 {
				return nil, errs.NewValueIsOutOfRangeError("quantity", qty, 1, "unbounded")
			}
			if err := l.increment(qty); err != nil {
				return nil, err
			}
			return l, nil
		}
	}

	l, err := NewLine(kernel.NewUUID(), menuItemID, qty)
	if err != nil {
		return nil, err
	}
	c.lines = append(c.lines, l)
	return l, nil
}

// RemoveItem decrements the line by one and removes it when it reaches zero.
// It reports whether the line was removed.
func (c *Cart) RemoveItem(lineID kernel.UUID) (removed bool, err error) {
	for i, l := range c.lines {
		if !l.id.IsEqual(lineID) {
			continue
		}
		if l.decrement() {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true, nil
		}
		return false, nil
	}
	return false, errs.NewObjectNotFoundError("cart line", lineID)
}

// Clear drops every line. Clearing an empty cart is a no-op.
func (c *Cart) Clear() {
	c.lines = nil
}

// Line looks up a line by id.
func (c *Cart) Line(lineID kernel.UUID) (*Line, bool) {
	for _, l := range c.lines {
		if l.id.IsEqual(lineID) {
			return l, true
		}
	}
	return nil, false
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	c.customerID = id
	return nil
}
