package product_test

import (
	"testing"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func TestNewProduct(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create product with list price only", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Ceramic Mug", money(t, 1500), nil, 25)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "Ceramic Mug", p.Name())
		assert.Equal(t, int64(1500), p.Price().Amount())
		assert.Nil(t, p.DiscountPrice())
		assert.Equal(t, 25, p.Stock())
	})

	t.Run("should create product with discount price", func(t *testing.T) {
		discount := money(t, 1200)

		p, err := product.NewProduct(validID, "Ceramic Mug", money(t, 1500), &discount, 25)

		require.NoError(t, err)
		require.NotNil(t, p.DiscountPrice())
		assert.Equal(t, int64(1200), p.DiscountPrice().Amount())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := product.NewProduct(invalidID, "Ceramic Mug", money(t, 1500), nil, 25)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		p, err := product.NewProduct(validID, "", money(t, 1500), nil, 25)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, p)
	})

	t.Run("should fail when discount exceeds list price", func(t *testing.T) {
		discount := money(t, 1600)

		p, err := product.NewProduct(validID, "Ceramic Mug", money(t, 1500), &discount, 25)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, p)
	})

	t.Run("should fail with negative stock", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Ceramic Mug", money(t, 1500), nil, -1)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should allow zero stock", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Ceramic Mug", money(t, 1500), nil, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, p.Stock())
	})
}

func TestProduct_EffectivePrice(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should use list price when no discount", func(t *testing.T) {
		p, _ := product.NewProduct(id, "Ceramic Mug", money(t, 1500), nil, 10)

		assert.Equal(t, int64(1500), p.EffectivePrice().Amount())
	})

	t.Run("should prefer discount price when present", func(t *testing.T) {
		discount := money(t, 1200)
		p, _ := product.NewProduct(id, "Ceramic Mug", money(t, 1500), &discount, 10)

		assert.Equal(t, int64(1200), p.EffectivePrice().Amount())
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("should fail for nil product", func(t *testing.T) {
		var p *product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})

	t.Run("should fail for zero value product", func(t *testing.T) {
		var p product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}
