package directoryrepo

import (
	"context"
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/ports"
	"quickbite/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuCatalog implements ports.MenuCatalog over the menu_items table.
type GormMenuCatalog struct {
	db *gorm.DB
}

func NewGormMenuCatalog(db *gorm.DB) *GormMenuCatalog {
	return &GormMenuCatalog{db: db}
}

func (r *GormMenuCatalog) GetMenuItem(ctx context.Context, id kernel.UUID) (ports.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return ports.MenuItem{}, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.MenuItem{}, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return ports.MenuItem{}, err
	}

	restaurantID, err := toUUID(dto.RestaurantID)
	if err != nil {
		return ports.MenuItem{}, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return ports.MenuItem{}, err
	}

	return ports.MenuItem{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         dto.Name,
		Price:        price,
		Available:    dto.Available,
	}, nil
}
