package queries

import (
	"context"
	"database/sql"
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/errs"
	"quickbite/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetOwnedRestaurantQueryIsNotConstructed = errors.New(
	"GetOwnedRestaurantQuery must be created via NewGetOwnedRestaurantQuery constructor",
)

// GetOwnedRestaurantQuery resolves the restaurant a restaurant-owner
// principal acts for.
type GetOwnedRestaurantQuery struct {
	ownerID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOwnedRestaurantQuery(ownerID kernel.UUID) (GetOwnedRestaurantQuery, error) {
	if err := requiredID("owner id", ownerID); err != nil {
		return GetOwnedRestaurantQuery{}, err
	}
	return GetOwnedRestaurantQuery{ownerID: ownerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOwnedRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnedRestaurantQueryIsNotConstructed)
}

type GetOwnedRestaurantQueryHandler struct {
	db *gorm.DB
}

func NewGetOwnedRestaurantQueryHandler(db *gorm.DB) GetOwnedRestaurantQueryHandler {
	return GetOwnedRestaurantQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the owner has no restaurant.
func (h GetOwnedRestaurantQueryHandler) Handle(ctx context.Context, query GetOwnedRestaurantQuery) (kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var id uuid.UUID
	err := h.db.WithContext(ctx).
		Raw(`SELECT id FROM restaurants WHERE owner_id = ? ORDER BY id LIMIT 1`, query.ownerID.Bytes()).
		Row().
		Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("restaurant for owner", query.ownerID.String())
		}
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(id[:])
}
