package queries

import (
	"context"

	"quickbite/internal/core/domain/model/status"

	"gorm.io/gorm"
)

type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle returns the partner's in-flight deliveries, most recently accepted first.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT `+deliveryViewColumns+`
		WHERE d.partner_id = ? AND d.status IN (?, ?)
		ORDER BY d.accepted_at DESC NULLS LAST, d.id
	`,
		query.PartnerID().Bytes(),
		status.DeliveryAccepted.String(),
		status.DeliveryPickedUp.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliveryViews(rows)
}
