package kernel_test

import (
	"testing"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative amount", func(t *testing.T) {
		m, err := kernel.NewMoney(12500)

		require.NoError(t, err)
		assert.Equal(t, int64(12500), m.Amount())
	})

	t.Run("should accept zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value equals Zero constructor", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsEqual(kernel.Zero()))
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should add two amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		b, _ := kernel.NewMoney(250)

		sum := a.Add(b)

		assert.Equal(t, int64(350), sum.Amount())
	})

	t.Run("should not mutate operands", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		b, _ := kernel.NewMoney(250)

		_ = a.Add(b)

		assert.Equal(t, int64(100), a.Amount())
		assert.Equal(t, int64(250), b.Amount())
	})
}

func TestMoney_Subtract(t *testing.T) {
	t.Run("should subtract smaller from larger", func(t *testing.T) {
		a, _ := kernel.NewMoney(500)
		b, _ := kernel.NewMoney(200)

		diff, err := a.Subtract(b)

		require.NoError(t, err)
		assert.Equal(t, int64(300), diff.Amount())
	})

	t.Run("should allow subtracting to zero", func(t *testing.T) {
		a, _ := kernel.NewMoney(500)

		diff, err := a.Subtract(a)

		require.NoError(t, err)
		assert.True(t, diff.IsZero())
	})

	t.Run("should reject negative result", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		b, _ := kernel.NewMoney(200)

		_, err := a.Subtract(b)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_MultiplyBy(t *testing.T) {
	t.Run("should multiply unit price by quantity", func(t *testing.T) {
		unitPrice, _ := kernel.NewMoney(10000)

		lineTotal, err := unitPrice.MultiplyBy(5)

		require.NoError(t, err)
		assert.Equal(t, int64(50000), lineTotal.Amount())
	})

	t.Run("should yield zero for zero quantity", func(t *testing.T) {
		unitPrice, _ := kernel.NewMoney(10000)

		lineTotal, err := unitPrice.MultiplyBy(0)

		require.NoError(t, err)
		assert.True(t, lineTotal.IsZero())
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		unitPrice, _ := kernel.NewMoney(10000)

		_, err := unitPrice.MultiplyBy(-2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoney_Apportion(t *testing.T) {
	t.Run("should apportion proportionally", func(t *testing.T) {
		// Tax of 50.00 over a 500.00 subtotal, apportioned to a 200.00 part.
		tax, _ := kernel.NewMoney(5000)
		part, _ := kernel.NewMoney(20000)
		whole, _ := kernel.NewMoney(50000)

		apportioned := tax.Apportion(part, whole)

		assert.Equal(t, int64(2000), apportioned.Amount())
	})

	t.Run("should round toward zero", func(t *testing.T) {
		tax, _ := kernel.NewMoney(100)
		part, _ := kernel.NewMoney(1)
		whole, _ := kernel.NewMoney(3)

		apportioned := tax.Apportion(part, whole)

		assert.Equal(t, int64(33), apportioned.Amount())
	})

	t.Run("should yield zero when whole is zero", func(t *testing.T) {
		tax, _ := kernel.NewMoney(5000)

		apportioned := tax.Apportion(kernel.Zero(), kernel.Zero())

		assert.True(t, apportioned.IsZero())
	})
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		amount   int64
		expected string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{100, "1.00"},
		{12550, "125.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			m, err := kernel.NewMoney(tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.String())
		})
	}
}
