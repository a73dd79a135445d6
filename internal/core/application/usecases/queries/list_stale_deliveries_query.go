package queries

import (
	"context"
	"errors"
	"time"

	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/pkg/errs"
	"quickbite/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListStaleDeliveriesQueryIsNotConstructed = errors.New(
	"ListStaleDeliveriesQuery must be created via NewListStaleDeliveriesQuery constructor",
)

// ListStaleDeliveriesQuery finds deliveries still waiting for a partner that
// were assigned before a cutoff.
type ListStaleDeliveriesQuery struct {
	assignedBefore time.Time
	guard          guard.ConstructorGuard
}

func NewListStaleDeliveriesQuery(assignedBefore time.Time) (ListStaleDeliveriesQuery, error) {
	if assignedBefore.IsZero() {
		return ListStaleDeliveriesQuery{}, errs.NewValueIsRequiredError("assigned before")
	}
	return ListStaleDeliveriesQuery{assignedBefore: assignedBefore.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q ListStaleDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListStaleDeliveriesQueryIsNotConstructed)
}

func (q ListStaleDeliveriesQuery) AssignedBefore() time.Time {
	return q.assignedBefore
}

type ListStaleDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListStaleDeliveriesQueryHandler(db *gorm.DB) ListStaleDeliveriesQueryHandler {
	return ListStaleDeliveriesQueryHandler{db: db}
}

func (h ListStaleDeliveriesQueryHandler) Handle(ctx context.Context, query ListStaleDeliveriesQuery) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT `+deliveryViewColumns+`
		WHERE d.status = ? AND d.partner_id IS NULL AND d.assigned_at < ?
		ORDER BY d.assigned_at, d.id
	`, status.DeliveryAssigned.String(), query.AssignedBefore()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliveryViews(rows)
}
