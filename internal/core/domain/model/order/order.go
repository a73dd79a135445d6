package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/pkg/errs"
	"quickbite/internal/pkg/guard"
)

// codePrefix starts every human-readable order code.
const codePrefix = "QB"

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrMixedRestaurants is returned when the snapshot spans more than one
	// restaurant. A single order is always fulfilled by one restaurant.
	ErrMixedRestaurants = errs.NewValueIsInvalidError("order lines belong to more than one restaurant")

	// ErrDeliveryAlreadyAttached is returned when a second delivery is linked
	// to the same order.
	ErrDeliveryAlreadyAttached = errs.NewConflictError("order already has a delivery")
)

// Order is the aggregate root for a single checkout.
//
// Order follows these invariants:
//   - total equals the sum of line totals, fixed at creation
//   - lines are never added, removed or repriced after creation
//   - status changes only through ChangeStatus, which consults status.CanTransition
//   - at most one delivery is ever attached
type Order struct {
	id                kernel.UUID
	code              string
	customerID        kernel.UUID
	restaurantID      kernel.UUID
	status            status.OrderStatus
	lines             []Line
	total             kernel.Money
	createdAt         time.Time
	deliveryRequested bool
	deliveryID        *kernel.UUID
	guard             guard.ConstructorGuard
}

// NewOrder snapshots priced cart lines into a PENDING order.
//
// The restaurant is taken from the first line. Every other line must belong
// to the same restaurant, otherwise ErrMixedRestaurants is returned.
// Delivery is always requested for orders created at checkout.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Snapshot{
//	    {MenuItemID: pizza, RestaurantID: r, Quantity: 2, UnitPrice: kernel.MustMoney("100.00")},
//	}, time.Now())
func NewOrder(id, customerID kernel.UUID, snapshot []Snapshot, now time.Time) (*Order, error) {
	if len(snapshot) == 0 {
		return nil, errs.NewValueIsRequiredError("order lines")
	}

	o := &Order{
		status:            status.OrderPending,
		createdAt:         now.UTC(),
		deliveryRequested: true,
		guard:             guard.NewConstructorGuard(),
	}

	lines := make([]Line, 0, len(snapshot))
	var lineErr error
	for _, s := range snapshot {
		if !s.RestaurantID.IsEqual(snapshot[0].RestaurantID) {
			lineErr = errors.Join(lineErr, ErrMixedRestaurants)
			break
		}
		l, err := newLine(s.MenuItemID, s.Quantity, s.UnitPrice)
		if err != nil {
			lineErr = errors.Join(lineErr, err)
			continue
		}
		lines = append(lines, l)
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(snapshot[0].RestaurantID),
		lineErr,
	); err != nil {
		return nil, err
	}

	o.setLines(lines)
	o.code = NewCode(o.createdAt, o.id)
	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. The stored total must
// match the stored lines.
func RestoreOrder(
	id kernel.UUID,
	code string,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	st status.OrderStatus,
	lines []Line,
	total kernel.Money,
	createdAt time.Time,
	deliveryRequested bool,
	deliveryID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		code:              code,
		createdAt:         createdAt,
		deliveryRequested: deliveryRequested,
		guard:             guard.NewConstructorGuard(),
	}

	var deliveryErr error
	if deliveryID != nil {
		deliveryErr = deliveryID.Validate()
		did := *deliveryID
		o.deliveryID = &did
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		st.Validate(),
		deliveryErr,
	); err != nil {
		return nil, err
	}
	o.status = st
	o.setLines(lines)

	if !o.total.IsEqual(total) {
		return nil, errs.NewValueIsInvalidErrorWithCause("order total",
			fmt.Errorf("stored total %s does not match line total %s", total, o.total))
	}
	return o, nil
}

// NewCode renders QB-YYYYMMDD-XXXXXXXX, where the suffix is the first eight
// hex digits of the order id.
func NewCode(createdAt time.Time, id kernel.UUID) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", codePrefix, createdAt.UTC().Format("20060102"), suffix)
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) Code() string                 { return o.code }
func (o *Order) CustomerID() kernel.UUID      { return o.customerID }
func (o *Order) RestaurantID() kernel.UUID    { return o.restaurantID }
func (o *Order) Status() status.OrderStatus   { return o.status }
func (o *Order) Total() kernel.Money          { return o.total }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) DeliveryRequested() bool      { return o.deliveryRequested }
func (o *Order) BelongsTo(r kernel.UUID) bool { return o.restaurantID.IsEqual(r) }

// Lines returns a copy; the order's own lines cannot be changed.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// DeliveryID returns the attached delivery, or nil.
func (o *Order) DeliveryID() *kernel.UUID {
	if o.deliveryID == nil {
		return nil
	}
	id := *o.deliveryID
	return &id
}

// NeedsDelivery reports whether entering READY_FOR_PICKUP must create a delivery.
func (o *Order) NeedsDelivery() bool {
	return o.deliveryRequested && o.deliveryID == nil
}

// ChangeStatus moves the order to next. A move the order table does not
// allow returns a conflict and leaves the order untouched.
func (o *Order) ChangeStatus(next status.OrderStatus) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !o.status.CanTransitionTo(next) {
		return status.TransitionError(status.KindOrder, string(o.status), string(next))
	}
	o.status = next
	return nil
}

// AttachDelivery links the order's single delivery.
func (o *Order) AttachDelivery(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	if o.deliveryID != nil {
		if o.deliveryID.IsEqual(deliveryID) {
			return nil
		}
		return ErrDeliveryAlreadyAttached
	}
	o.deliveryID = &deliveryID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setLines(lines []Line) {
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	o.total = kernel.ZeroMoney()
	for _, l := range o.lines {
		o.total = o.total.Add(l.lineTotal)
	}
}
