package queries

import (
	"context"
	"database/sql"
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown order and
// errs.PermissionDeniedError when the viewer is neither party to it.
func (h GetOrderDetailQueryHandler) Handle(ctx context.Context, query GetOrderDetailQuery) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}

	db := h.db.WithContext(ctx)

	summary, err := scanOrderSummary(db.Raw(`SELECT `+orderSummaryColumns+`
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetail{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderDetail{}, err
	}

	viewer := query.ViewerID()
	if !viewer.IsEqual(summary.CustomerID) && !viewer.IsEqual(summary.RestaurantID) {
		return OrderDetail{}, errs.NewPermissionDeniedError("order", query.OrderID())
	}

	rows, err := db.Raw(`
		SELECT
			l.menu_item_id,
			COALESCE(m.name, ''),
			l.quantity,
			l.unit_price,
			l.line_total
		FROM order_lines l
		LEFT JOIN menu_items m ON m.id = l.menu_item_id
		WHERE l.order_id = ?
		ORDER BY l.position
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderDetail{}, err
	}
	defer rows.Close()

	lines := make([]OrderLineView, 0)
	for rows.Next() {
		var (
			line             OrderLineView
			itemID           uuid.UUID
			unitPrice, total decimal.Decimal
		)
		if err := rows.Scan(&itemID, &line.MenuItemName, &line.Quantity, &unitPrice, &total); err != nil {
			return OrderDetail{}, err
		}
		if line.MenuItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return OrderDetail{}, err
		}
		if line.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return OrderDetail{}, err
		}
		if line.LineTotal, err = kernel.NewMoney(total); err != nil {
			return OrderDetail{}, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return OrderDetail{}, err
	}

	return OrderDetail{OrderSummary: summary, Lines: lines}, nil
}
