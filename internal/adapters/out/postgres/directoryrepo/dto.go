// Package directoryrepo reads the records fulfillment refers to but does not
// own: customers and their addresses, delivery partners, restaurants and
// menu items. The only write is a partner's availability flag.
package directoryrepo

import (
	"quickbite/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Email string    `gorm:"type:varchar(255);not null;uniqueIndex"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO is embedded wherever an address is stored inline.
type AddressDTO struct {
	Line1      string `gorm:"column:line1"`
	Line2      string `gorm:"column:line2"`
	City       string `gorm:"column:city"`
	State      string `gorm:"column:state"`
	PostalCode string `gorm:"column:postal_code"`
	Country    string `gorm:"column:country"`
}

type CustomerAddressDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Address    AddressDTO `gorm:"embedded"`
	IsDefault  bool       `gorm:"not null"`
}

func (CustomerAddressDTO) TableName() string {
	return "customer_addresses"
}

type PartnerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Available bool      `gorm:"not null"`
}

func (PartnerDTO) TableName() string {
	return "partners"
}

type RestaurantDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name    string     `gorm:"type:varchar(255);not null"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type MenuItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available    bool            `gorm:"not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// AddressFromDomain flattens an address for storage.
func AddressFromDomain(a kernel.Address) AddressDTO {
	return AddressDTO{
		Line1:      a.Line1(),
		Line2:      a.Line2(),
		City:       a.City(),
		State:      a.State(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
	}
}

// toAddress returns nil when the stored columns do not form a usable
// address, which callers treat the same as nothing on file.
func toAddress(dto AddressDTO) *kernel.Address {
	a, err := kernel.NewAddress(dto.Line1, dto.Line2, dto.City, dto.State, dto.PostalCode, dto.Country)
	if err != nil {
		return nil
	}
	return &a
}

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
