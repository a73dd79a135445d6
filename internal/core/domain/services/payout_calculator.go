package services

import (
	"quickbite/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var (
	// MinimumPayout is paid for small orders and when the total is unknown.
	MinimumPayout = kernel.MustMoney("30.00")
	// PayoutRate is the partner's share of the order total.
	PayoutRate = decimal.RequireFromString("0.10")
)

// PayoutCalculator computes a delivery partner's payout from an order total.
type PayoutCalculator struct{}

func NewPayoutCalculator() PayoutCalculator {
	return PayoutCalculator{}
}

// Payout returns max(total × 0.10, 30.00), or 30.00 for a nil total.
func (PayoutCalculator) Payout(orderTotal *kernel.Money) kernel.Money {
	if orderTotal == nil {
		return MinimumPayout
	}
	return orderTotal.MulRate(PayoutRate).Max(MinimumPayout)
}
