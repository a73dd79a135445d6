// Package status holds the two fulfillment state machines as static tables.
//
// Order:
//
//	PENDING ──> PREPARING ──> READY_FOR_PICKUP ──> OUT_FOR_DELIVERY ──> DELIVERED
//	   │            │                 │
//	   └────────────┴─────────────────┴──> CANCELLED
//
// Delivery:
//
//	ASSIGNED ──> ACCEPTED ──> PICKED_UP ──> DELIVERED
//	   │            │
//	   └────────────┴──> CANCELLED
//
// Both graphs are acyclic and each has two terminal states. CanTransition is
// the single lookup every aggregate goes through.
package status

import (
	"fmt"

	"quickbite/internal/pkg/errs"
)

// Kind selects which state machine a transition belongs to.
type Kind string

const (
	KindOrder    Kind = "order"
	KindDelivery Kind = "delivery"
)

type OrderStatus string

const (
	OrderPending        OrderStatus = "PENDING"
	OrderPreparing      OrderStatus = "PREPARING"
	OrderReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	OrderOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered      OrderStatus = "DELIVERED"
	OrderCancelled      OrderStatus = "CANCELLED"
)

type DeliveryStatus string

const (
	DeliveryAssigned  DeliveryStatus = "ASSIGNED"
	DeliveryAccepted  DeliveryStatus = "ACCEPTED"
	DeliveryPickedUp  DeliveryStatus = "PICKED_UP"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryCancelled DeliveryStatus = "CANCELLED"
)

var transitions = map[Kind]map[string][]string{
	KindOrder: {
		string(OrderPending):        {string(OrderPreparing), string(OrderCancelled)},
		string(OrderPreparing):      {string(OrderReadyForPickup), string(OrderCancelled)},
		string(OrderReadyForPickup): {string(OrderOutForDelivery), string(OrderCancelled)},
		string(OrderOutForDelivery): {string(OrderDelivered)},
		string(OrderDelivered):      nil,
		string(OrderCancelled):      nil,
	},
	KindDelivery: {
		string(DeliveryAssigned):  {string(DeliveryAccepted), string(DeliveryCancelled)},
		string(DeliveryAccepted):  {string(DeliveryPickedUp), string(DeliveryCancelled)},
		string(DeliveryPickedUp):  {string(DeliveryDelivered)},
		string(DeliveryDelivered): nil,
		string(DeliveryCancelled): nil,
	},
}

// CanTransition reports whether the kind's table allows from -> to.
// Unknown kinds or states are never allowed to move.
func CanTransition(kind Kind, from, to string) bool {
	table, ok := transitions[kind]
	if !ok {
		return false
	}
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

// States lists every state of kind, in no particular order.
func States(kind Kind) []string {
	out := make([]string, 0, len(transitions[kind]))
	for s := range transitions[kind] {
		out = append(out, s)
	}
	return out
}

// IsTerminal reports whether state has no outgoing transitions.
func IsTerminal(kind Kind, state string) bool {
	next, ok := transitions[kind][state]
	return ok && len(next) == 0
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

func (s OrderStatus) Validate() error {
	if _, ok := transitions[KindOrder][string(s)]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%q is not a known status", string(s)))
	}
	return nil
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return CanTransition(KindOrder, string(s), string(next))
}

func (s OrderStatus) IsTerminal() bool {
	return IsTerminal(KindOrder, string(s))
}

func (s OrderStatus) String() string {
	return string(s)
}

func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	st := DeliveryStatus(s)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

func (s DeliveryStatus) Validate() error {
	if _, ok := transitions[KindDelivery][string(s)]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery status", fmt.Errorf("%q is not a known status", string(s)))
	}
	return nil
}

func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	return CanTransition(KindDelivery, string(s), string(next))
}

func (s DeliveryStatus) IsTerminal() bool {
	return IsTerminal(KindDelivery, string(s))
}

func (s DeliveryStatus) String() string {
	return string(s)
}

// TransitionError builds the conflict returned when a guarded move is refused.
func TransitionError(kind Kind, from, to string) error {
	return errs.NewConflictError(fmt.Sprintf("%s cannot move from %s to %s", kind, from, to))
}
