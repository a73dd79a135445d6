package queries

import (
	"database/sql"
	"time"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/status"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderSummary is one row of a customer's order history or a restaurant's
// order board.
type OrderSummary struct {
	ID             kernel.UUID
	Code           string
	CustomerID     kernel.UUID
	RestaurantID   kernel.UUID
	Status         status.OrderStatus
	Total          kernel.Money
	CreatedAt      time.Time
	DeliveryID     *kernel.UUID
	DeliveryStatus *status.DeliveryStatus
}

const orderSummaryColumns = `
	o.id,
	o.code,
	o.customer_id,
	o.restaurant_id,
	o.status,
	o.total,
	o.created_at,
	d.id,
	d.status
FROM orders o
LEFT JOIN deliveries d ON d.order_id = o.id`

func scanOrderSummary(row interface{ Scan(dest ...any) error }) (OrderSummary, error) {
	var (
		summary                OrderSummary
		id, customerID, restID uuid.UUID
		st                     string
		total                  decimal.Decimal
		deliveryID             uuid.NullUUID
		deliveryStatus         sql.NullString
	)

	err := row.Scan(
		&id,
		&summary.Code,
		&customerID,
		&restID,
		&st,
		&total,
		&summary.CreatedAt,
		&deliveryID,
		&deliveryStatus,
	)
	if err != nil {
		return OrderSummary{}, err
	}

	if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderSummary{}, err
	}
	if summary.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderSummary{}, err
	}
	if summary.RestaurantID, err = kernel.UUIDFromBytes(restID[:]); err != nil {
		return OrderSummary{}, err
	}
	if summary.Status, err = status.ParseOrderStatus(st); err != nil {
		return OrderSummary{}, err
	}
	if summary.Total, err = kernel.NewMoney(total); err != nil {
		return OrderSummary{}, err
	}
	summary.CreatedAt = summary.CreatedAt.UTC()

	if deliveryID.Valid {
		dID, idErr := kernel.UUIDFromBytes(deliveryID.UUID[:])
		if idErr != nil {
			return OrderSummary{}, idErr
		}
		summary.DeliveryID = &dID
	}
	if deliveryStatus.Valid {
		ds, dsErr := status.ParseDeliveryStatus(deliveryStatus.String)
		if dsErr != nil {
			return OrderSummary{}, dsErr
		}
		summary.DeliveryStatus = &ds
	}

	return summary, nil
}

func scanOrderSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		s, err := scanOrderSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
