package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

func (h ListCustomerOrdersQueryHandler) Handle(ctx context.Context, query ListCustomerOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT `+orderSummaryColumns+`
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC, o.id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
