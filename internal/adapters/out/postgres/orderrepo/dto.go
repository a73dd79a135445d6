// Package orderrepo persists the Order aggregate: one orders row plus its
// immutable order_lines.
package orderrepo

import (
	"time"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/core/domain/model/status"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO maps the order aggregate to the orders table. Lines are loaded
// through the has-many association ordered by position.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code              string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	RestaurantID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status            string          `gorm:"type:varchar(32);not null"`
	Total             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryRequested bool            `gorm:"not null"`
	DeliveryID        *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time
	Lines             []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type OrderLineDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position   int             `gorm:"primaryKey;autoIncrement:false"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	LineTotal  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	var deliveryID *uuid.UUID
	if id := o.DeliveryID(); id != nil {
		raw := id.Bytes()
		deliveryID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for i, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:    orderID,
			Position:   i,
			MenuItemID: l.MenuItemID().Bytes(),
			Quantity:   l.Quantity(),
			UnitPrice:  l.UnitPrice().Decimal(),
			LineTotal:  l.LineTotal().Decimal(),
		})
	}

	return OrderDTO{
		ID:                orderID,
		Code:              o.Code(),
		CustomerID:        o.CustomerID().Bytes(),
		RestaurantID:      o.RestaurantID().Bytes(),
		Status:            o.Status().String(),
		Total:             o.Total().Decimal(),
		DeliveryRequested: o.DeliveryRequested(),
		DeliveryID:        deliveryID,
		CreatedAt:         o.CreatedAt(),
		Lines:             lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var deliveryID *kernel.UUID
	if dto.DeliveryID != nil {
		dID, err := kernel.UUIDFromBytes((*dto.DeliveryID)[:])
		if err != nil {
			return nil, err
		}
		deliveryID = &dID
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		itemID, err := kernel.UUIDFromBytes(l.MenuItemID[:])
		if err != nil {
			return nil, err
		}
		price, err := kernel.NewMoney(l.UnitPrice)
		if err != nil {
			return nil, err
		}
		line, err := order.RestoreLine(itemID, l.Quantity, price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		customerID,
		restaurantID,
		status.OrderStatus(dto.Status),
		lines,
		total,
		dto.CreatedAt.UTC(),
		dto.DeliveryRequested,
		deliveryID,
	)
}
