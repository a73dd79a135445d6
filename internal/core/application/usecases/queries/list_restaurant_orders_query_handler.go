package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListRestaurantOrdersQueryHandler(db *gorm.DB) ListRestaurantOrdersQueryHandler {
	return ListRestaurantOrdersQueryHandler{db: db}
}

func (h ListRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `SELECT ` + orderSummaryColumns + `
		WHERE o.restaurant_id = ?`
	args := []any{query.RestaurantID().Bytes()}

	if statuses := query.Statuses(); len(statuses) > 0 {
		names := make([]string, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, s.String())
		}
		sql += ` AND o.status IN ?`
		args = append(args, names)
	}
	sql += `
		ORDER BY o.created_at DESC, o.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
