package queries

import (
	"context"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/status"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetEarningsSinceQueryHandler struct {
	db *gorm.DB
}

func NewGetEarningsSinceQueryHandler(db *gorm.DB) GetEarningsSinceQueryHandler {
	return GetEarningsSinceQueryHandler{db: db}
}

// Handle aggregates in the database; it never reads or changes aggregates.
func (h GetEarningsSinceQueryHandler) Handle(ctx context.Context, query GetEarningsSinceQuery) (Earnings, error) {
	if err := query.Validate(); err != nil {
		return Earnings{}, err
	}

	var (
		count    int
		payout   decimal.Decimal
		distance float64
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(payout), 0),
			COALESCE(SUM(distance_km), 0)
		FROM deliveries
		WHERE partner_id = ?
			AND status = ?
			AND delivered_at >= ?
	`,
		query.PartnerID().Bytes(),
		status.DeliveryDelivered.String(),
		query.Since(),
	).Row().Scan(&count, &payout, &distance)
	if err != nil {
		return Earnings{}, err
	}

	total, err := kernel.NewMoney(payout)
	if err != nil {
		return Earnings{}, err
	}

	return Earnings{
		Since:           query.Since(),
		Count:           count,
		TotalPayout:     total,
		TotalDistanceKm: distance,
	}, nil
}
