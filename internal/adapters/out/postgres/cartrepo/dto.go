// Package cartrepo persists the Cart aggregate: one carts row per customer
// and its cart_lines in insertion order.
package cartrepo

import (
	"quickbite/internal/core/domain/model/cart"
	"quickbite/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CartDTO struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:carts_customer_id_key"`
	Lines      []CartLineDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

func (CartDTO) TableName() string {
	return "carts"
}

type CartLineDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CartID     uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity   int       `gorm:"not null"`
	Position   int       `gorm:"not null"`
}

func (CartLineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(c *cart.Cart) CartDTO {
	cartID := c.ID().Bytes()
	lines := make([]CartLineDTO, 0, len(c.Lines()))
	for i, l := range c.Lines() {
		lines = append(lines, CartLineDTO{
			ID:         l.ID().Bytes(),
			CartID:     cartID,
			MenuItemID: l.MenuItemID().Bytes(),
			Quantity:   l.Quantity(),
			Position:   i,
		})
	}

	return CartDTO{
		ID:         cartID,
		CustomerID: c.CustomerID().Bytes(),
		Lines:      lines,
	}
}

// toDomain expects dto.Lines ordered by position.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*cart.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		lineID, err := kernel.UUIDFromBytes(l.ID[:])
		if err != nil {
			return nil, err
		}
		itemID, err := kernel.UUIDFromBytes(l.MenuItemID[:])
		if err != nil {
			return nil, err
		}
		line, err := cart.NewLine(lineID, itemID, l.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(id, customerID, lines)
}
