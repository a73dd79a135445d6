package http

import (
	"time"

	"quickbite/internal/core/application/usecases/queries"
	"quickbite/internal/core/domain/model/cart"
	"quickbite/internal/core/domain/model/delivery"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type AddCartItem struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Quantity   int       `json:"quantity"`
}

type UpdateOrderStatus struct {
	Status string `json:"status"`
}

type Availability struct {
	Available bool `json:"available"`
}

type CartLine struct {
	ID         uuid.UUID `json:"id"`
	MenuItemID uuid.UUID `json:"menuItemId"`
	Quantity   int       `json:"quantity"`
}

type Cart struct {
	ID         uuid.UUID  `json:"id"`
	CustomerID uuid.UUID  `json:"customerId"`
	Lines      []CartLine `json:"lines"`
}

type OrderLine struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Name       string    `json:"name,omitempty"`
	Quantity   int       `json:"quantity"`
	UnitPrice  string    `json:"unitPrice"`
	LineTotal  string    `json:"lineTotal"`
}

type Order struct {
	ID             uuid.UUID   `json:"id"`
	Code           string      `json:"code"`
	CustomerID     uuid.UUID   `json:"customerId"`
	RestaurantID   uuid.UUID   `json:"restaurantId"`
	Status         string      `json:"status"`
	Total          string      `json:"total"`
	CreatedAt      time.Time   `json:"createdAt"`
	DeliveryID     *uuid.UUID  `json:"deliveryId,omitempty"`
	DeliveryStatus *string     `json:"deliveryStatus,omitempty"`
	Lines          []OrderLine `json:"lines,omitempty"`
}

type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

type Delivery struct {
	ID               uuid.UUID  `json:"id"`
	OrderID          uuid.UUID  `json:"orderId"`
	OrderCode        string     `json:"orderCode,omitempty"`
	PartnerID        *uuid.UUID `json:"partnerId,omitempty"`
	Status           string     `json:"status"`
	PickupAddress    Address    `json:"pickupAddress"`
	DeliveryAddress  Address    `json:"deliveryAddress"`
	Payout           string     `json:"payout"`
	DistanceKm       *float64   `json:"distanceKm,omitempty"`
	EstimatedMinutes *int       `json:"estimatedMinutes,omitempty"`
	AssignedAt       time.Time  `json:"assignedAt"`
	AcceptedAt       *time.Time `json:"acceptedAt,omitempty"`
	PickedUpAt       *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt      *time.Time `json:"deliveredAt,omitempty"`
}

type Earnings struct {
	Since           time.Time `json:"since"`
	Count           int       `json:"count"`
	TotalPayout     string    `json:"totalPayout"`
	TotalDistanceKm float64   `json:"totalDistanceKm"`
}

func toCart(c *cart.Cart) Cart {
	lines := make([]CartLine, 0, len(c.Lines()))
	for _, l := range c.Lines() {
		lines = append(lines, CartLine{
			ID:         l.ID().Bytes(),
			MenuItemID: l.MenuItemID().Bytes(),
			Quantity:   l.Quantity(),
		})
	}
	return Cart{ID: c.ID().Bytes(), CustomerID: c.CustomerID().Bytes(), Lines: lines}
}

func toOrder(o *order.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, OrderLine{
			MenuItemID: l.MenuItemID().Bytes(),
			Quantity:   l.Quantity(),
			UnitPrice:  l.UnitPrice().String(),
			LineTotal:  l.LineTotal().String(),
		})
	}
	return Order{
		ID:           o.ID().Bytes(),
		Code:         o.Code(),
		CustomerID:   o.CustomerID().Bytes(),
		RestaurantID: o.RestaurantID().Bytes(),
		Status:       o.Status().String(),
		Total:        o.Total().String(),
		CreatedAt:    o.CreatedAt(),
		DeliveryID:   optionalID(o.DeliveryID()),
		Lines:        lines,
	}
}

func toOrderSummary(s queries.OrderSummary) Order {
	out := Order{
		ID:           s.ID.Bytes(),
		Code:         s.Code,
		CustomerID:   s.CustomerID.Bytes(),
		RestaurantID: s.RestaurantID.Bytes(),
		Status:       s.Status.String(),
		Total:        s.Total.String(),
		CreatedAt:    s.CreatedAt,
		DeliveryID:   optionalID(s.DeliveryID),
	}
	if s.DeliveryStatus != nil {
		st := s.DeliveryStatus.String()
		out.DeliveryStatus = &st
	}
	return out
}

func toOrderSummaries(summaries []queries.OrderSummary) []Order {
	out := make([]Order, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toOrderSummary(s))
	}
	return out
}

func toOrderDetail(d queries.OrderDetail) Order {
	out := toOrderSummary(d.OrderSummary)
	out.Lines = make([]OrderLine, 0, len(d.Lines))
	for _, l := range d.Lines {
		out.Lines = append(out.Lines, OrderLine{
			MenuItemID: l.MenuItemID.Bytes(),
			Name:       l.MenuItemName,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice.String(),
			LineTotal:  l.LineTotal.String(),
		})
	}
	return out
}

func toDelivery(d *delivery.Delivery) Delivery {
	return Delivery{
		ID:               d.ID().Bytes(),
		OrderID:          d.OrderID().Bytes(),
		PartnerID:        optionalID(d.PartnerID()),
		Status:           d.Status().String(),
		PickupAddress:    toAddress(d.PickupAddress()),
		DeliveryAddress:  toAddress(d.DeliveryAddress()),
		Payout:           d.Payout().String(),
		DistanceKm:       d.DistanceKm(),
		EstimatedMinutes: d.EstimatedMinutes(),
		AssignedAt:       d.AssignedAt(),
		PickedUpAt:       d.PickedUpAt(),
		DeliveredAt:      d.DeliveredAt(),
	}
}

func toDeliveryViews(views []queries.DeliveryView) []Delivery {
	out := make([]Delivery, 0, len(views))
	for _, v := range views {
		out = append(out, Delivery{
			ID:               v.ID.Bytes(),
			OrderID:          v.OrderID.Bytes(),
			OrderCode:        v.OrderCode,
			PartnerID:        optionalID(v.PartnerID),
			Status:           v.Status.String(),
			PickupAddress:    toAddress(v.PickupAddress),
			DeliveryAddress:  toAddress(v.DeliveryAddress),
			Payout:           v.Payout.String(),
			DistanceKm:       v.DistanceKm,
			EstimatedMinutes: v.EstimatedMinutes,
			AssignedAt:       v.AssignedAt,
			AcceptedAt:       v.AcceptedAt,
			PickedUpAt:       v.PickedUpAt,
			DeliveredAt:      v.DeliveredAt,
		})
	}
	return out
}

func toAddress(a kernel.Address) Address {
	return Address{
		Line1:      a.Line1(),
		Line2:      a.Line2(),
		City:       a.City(),
		State:      a.State(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
	}
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	b := id.Bytes()
	return &b
}
