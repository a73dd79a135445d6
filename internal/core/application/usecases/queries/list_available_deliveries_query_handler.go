package queries

import (
	"context"
	"database/sql"
	"errors"

	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListAvailableDeliveriesQueryHandler reads the open delivery board.
type ListAvailableDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListAvailableDeliveriesQueryHandler(db *gorm.DB) ListAvailableDeliveriesQueryHandler {
	return ListAvailableDeliveriesQueryHandler{db: db}
}

// Handle returns available deliveries ordered by assignment time. For a
// partner-scoped query an unknown partner is not found and an offline
// partner gets an empty list.
func (h ListAvailableDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableDeliveriesQuery,
) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	if partnerID := query.PartnerID(); partnerID != nil {
		var online bool
		err := db.Raw(`SELECT available FROM partners WHERE id = ?`, partnerID.Bytes()).Row().Scan(&online)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, errs.NewObjectNotFoundError("partner", partnerID.String())
			}
			return nil, err
		}
		if !online {
			return []DeliveryView{}, nil
		}
	}

	rows, err := db.Raw(`SELECT `+deliveryViewColumns+`
		WHERE d.status = ? AND d.partner_id IS NULL
		ORDER BY d.assigned_at, d.id
	`, status.DeliveryAssigned.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliveryViews(rows)
}
