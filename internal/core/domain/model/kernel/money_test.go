package kernel_test

import (
	"testing"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("rounds to two places", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("12.345"))

		require.NoError(t, err)
		assert.Equal(t, "12.35", m.String())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyFromString(t *testing.T) {
	m, err := kernel.MoneyFromString("100")
	require.NoError(t, err)
	assert.Equal(t, "100.00", m.String())

	_, err = kernel.MoneyFromString("ten")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMustMoney(t *testing.T) {
	assert.Equal(t, "30.00", kernel.MustMoney("30").String())
	assert.Panics(t, func() { kernel.MustMoney("-1") })
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add and multiply by quantity", func(t *testing.T) {
		a, err := kernel.MustMoney("100.00").MulQuantity(2)
		require.NoError(t, err)
		b, err := kernel.MustMoney("50.00").MulQuantity(1)
		require.NoError(t, err)

		assert.Equal(t, "250.00", kernel.ZeroMoney().Add(a).Add(b).String())
	})

	t.Run("quantity must be positive", func(t *testing.T) {
		_, err := kernel.MustMoney("1.00").MulQuantity(0)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rate multiplication rounds half up", func(t *testing.T) {
		got := kernel.MustMoney("0.05").MulRate(decimal.RequireFromString("0.10"))

		assert.Equal(t, "0.01", got.String())
	})

	t.Run("max", func(t *testing.T) {
		low := kernel.MustMoney("10.00")
		high := kernel.MustMoney("30.00")

		assert.True(t, low.Max(high).IsEqual(high))
		assert.True(t, high.Max(low).IsEqual(high))
	})

	t.Run("sums of cents stay exact", func(t *testing.T) {
		sum := kernel.ZeroMoney()
		for range 10 {
			sum = sum.Add(kernel.MustMoney("0.10"))
		}

		assert.True(t, sum.IsEqual(kernel.MustMoney("1.00")))
	})
}
