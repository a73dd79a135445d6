package directoryrepo

import (
	"context"
	"errors"

	"quickbite/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAddressBook implements ports.AddressBook. Unknown owners and
// incomplete addresses both come back as nil.
type GormAddressBook struct {
	db *gorm.DB
}

func NewGormAddressBook(db *gorm.DB) *GormAddressBook {
	return &GormAddressBook{db: db}
}

func (r *GormAddressBook) GetRestaurantAddress(ctx context.Context, restaurantID kernel.UUID) (*kernel.Address, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", restaurantID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toAddress(dto.Address), nil
}

func (r *GormAddressBook) GetCustomerDefaultAddress(ctx context.Context, customerID kernel.UUID) (*kernel.Address, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerAddressDTO
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND is_default", customerID.Bytes()).
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toAddress(dto.Address), nil
}
