package address_test

import (
	"testing"

	"commerce/internal/core/domain/model/address"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid address", func(t *testing.T) {
		a, err := address.NewAddress(validID, "12 Baker Street", "London", "NW1")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(validID))
		assert.Equal(t, "12 Baker Street", a.Street())
		assert.Equal(t, "London", a.City())
		assert.Equal(t, "NW1", a.ZipCode())
	})

	t.Run("should allow empty zip code", func(t *testing.T) {
		a, err := address.NewAddress(validID, "12 Baker Street", "London", "")

		require.NoError(t, err)
		assert.Empty(t, a.ZipCode())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := address.NewAddress(invalidID, "12 Baker Street", "London", "NW1")

		require.Error(t, err)
		assert.Nil(t, a)
	})

	t.Run("should fail with empty street", func(t *testing.T) {
		a, err := address.NewAddress(validID, "", "London", "NW1")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, a)
	})

	t.Run("should fail with empty city", func(t *testing.T) {
		a, err := address.NewAddress(validID, "12 Baker Street", "", "NW1")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, a)
	})

	t.Run("should aggregate multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := address.NewAddress(invalidID, "", "", "")

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "city")
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("should fail for nil address", func(t *testing.T) {
		var a *address.Address

		require.Error(t, a.Validate())
	})

	t.Run("should fail for zero value address", func(t *testing.T) {
		var a address.Address

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, address.ErrAddressIsNotConstructed, err)
	})
}
