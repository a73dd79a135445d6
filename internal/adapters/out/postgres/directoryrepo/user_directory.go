package directoryrepo

import (
	"context"
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/ports"
	"quickbite/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserDirectory implements ports.UserDirectory.
type GormUserDirectory struct {
	db *gorm.DB
}

func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

func (r *GormUserDirectory) GetCustomer(ctx context.Context, id kernel.UUID) (ports.Customer, error) {
	var dto CustomerDTO
	if err := r.first(ctx, &dto, "customer", id); err != nil {
		return ports.Customer{}, err
	}
	return ports.Customer{ID: id, Name: dto.Name, Email: dto.Email}, nil
}

func (r *GormUserDirectory) GetPartner(ctx context.Context, id kernel.UUID) (ports.Partner, error) {
	var dto PartnerDTO
	if err := r.first(ctx, &dto, "partner", id); err != nil {
		return ports.Partner{}, err
	}
	return ports.Partner{ID: id, Name: dto.Name, Available: dto.Available}, nil
}

// SetPartnerAvailable flips the partner's dispatch flag.
func (r *GormUserDirectory) SetPartnerAvailable(ctx context.Context, id kernel.UUID, available bool) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("id = ?", id.Bytes()).
		Update("available", available)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("partner", id.String())
	}
	return nil
}

func (r *GormUserDirectory) first(ctx context.Context, dest any, kind string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).First(dest, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError(kind, id.String())
		}
		return err
	}
	return nil
}
