package kernel

import (
	"fmt"

	"quickbite/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for every amount.
const MoneyScale = 2

// ErrMoneyIsNegative is returned for amounts below zero.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is a non-negative fixed-point amount rounded to MoneyScale digits.
// Arithmetic never goes through float64.
type Money struct {
	amount decimal.Decimal
}

// NewMoney validates and rounds amount.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: amount.Round(MoneyScale)}, nil
}

// MoneyFromString parses a decimal string such as "30.00".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(d)
}

// MustMoney is MoneyFromString for constants; it panics on bad input.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(fmt.Sprintf("kernel.MustMoney(%q): %v", s, err))
	}
	return m
}

// ZeroMoney returns 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulQuantity returns m × qty; qty must be positive.
func (m Money) MulQuantity(qty int) (Money, error) {
	if qty <= 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", qty, 1, "unbounded")
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty)))}, nil
}

// MulRate returns m × rate rounded half-up to MoneyScale digits.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Round(MoneyScale)}
}

// Max returns the larger of m and other.
func (m Money) Max(other Money) Money {
	if other.amount.GreaterThan(m.amount) {
		return other
	}
	return m
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String always renders two fractional digits, e.g. "250.00".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
