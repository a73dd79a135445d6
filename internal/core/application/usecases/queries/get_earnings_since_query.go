package queries

import (
	"errors"
	"time"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/errs"
	"quickbite/internal/pkg/guard"
)

var ErrGetEarningsSinceQueryIsNotConstructed = errors.New(
	"GetEarningsSinceQuery must be created via NewGetEarningsSinceQuery constructor",
)

// GetEarningsSinceQuery sums a partner's DELIVERED deliveries whose
// delivered_at is at or after since.
//
// Example:
//
//	query, err := NewGetEarningsSinceQuery(partnerID, StartOfDay(time.Now()))
//	earnings, err := handler.Handle(ctx, query)
//	fmt.Printf("%d deliveries, %s earned\n", earnings.Count, earnings.TotalPayout)
type GetEarningsSinceQuery struct {
	partnerID kernel.UUID
	since     time.Time
	guard     guard.ConstructorGuard
}

func NewGetEarningsSinceQuery(partnerID kernel.UUID, since time.Time) (GetEarningsSinceQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetEarningsSinceQuery{}, errs.NewValueIsRequiredErrorWithCause("partner id", err)
	}
	if since.IsZero() {
		return GetEarningsSinceQuery{}, errs.NewValueIsRequiredError("since")
	}
	return GetEarningsSinceQuery{
		partnerID: partnerID,
		since:     since.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetEarningsSinceQuery) Validate() error {
	return q.guard.Validate(ErrGetEarningsSinceQueryIsNotConstructed)
}

func (q GetEarningsSinceQuery) PartnerID() kernel.UUID { return q.partnerID }
func (q GetEarningsSinceQuery) Since() time.Time       { return q.since }

// StartOfDay is the default earnings window: midnight UTC of now's day.
func StartOfDay(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Earnings is the result of GetEarningsSinceQuery. Totals are zero when
// nothing was delivered in the window.
type Earnings struct {
	Since           time.Time
	Count           int
	TotalPayout     kernel.Money
	TotalDistanceKm float64
}
