package split_test

import (
	"testing"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/split"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderSplit(t *testing.T) {
	t.Run("should create valid split record", func(t *testing.T) {
		id := kernel.NewUUID()
		originalID := kernel.NewUUID()
		splitID := kernel.NewUUID()

		s, err := split.NewOrderSplit(id, originalID, splitID, "partial backorder", nil)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.True(t, s.OriginalOrderID().IsEqual(originalID))
		assert.True(t, s.SplitOrderID().IsEqual(splitID))
		assert.Equal(t, "partial backorder", s.Reason())
		assert.Nil(t, s.NewAddressID())
		assert.False(t, s.CreatedAt().IsZero())
		assert.Empty(t, s.Items())
	})

	t.Run("should keep the new address when provided", func(t *testing.T) {
		addrID := kernel.NewUUID()

		s, err := split.NewOrderSplit(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", &addrID)

		require.NoError(t, err)
		require.NotNil(t, s.NewAddressID())
		assert.True(t, s.NewAddressID().IsEqual(addrID))
	})

	t.Run("should reject identical order ids", func(t *testing.T) {
		orderID := kernel.NewUUID()

		s, err := split.NewOrderSplit(kernel.NewUUID(), orderID, orderID, "", nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, s)
	})

	t.Run("should reject empty new address id", func(t *testing.T) {
		var emptyAddr kernel.UUID

		s, err := split.NewOrderSplit(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", &emptyAddr)

		require.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestOrderSplit_RecordTransfer(t *testing.T) {
	t.Run("should append transfer records", func(t *testing.T) {
		s, err := split.NewOrderSplit(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", nil)
		require.NoError(t, err)
		originalItemID := kernel.NewUUID()
		splitItemID := kernel.NewUUID()

		require.NoError(t, s.RecordTransfer(originalItemID, splitItemID, 2))

		items := s.Items()
		require.Len(t, items, 1)
		assert.True(t, items[0].SplitID().IsEqual(s.ID()))
		assert.True(t, items[0].OriginalItemID().IsEqual(originalItemID))
		assert.True(t, items[0].SplitItemID().IsEqual(splitItemID))
		assert.Equal(t, 2, items[0].Quantity())
	})

	t.Run("should reject non positive quantity", func(t *testing.T) {
		s, err := split.NewOrderSplit(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", nil)
		require.NoError(t, err)

		err = s.RecordTransfer(kernel.NewUUID(), kernel.NewUUID(), 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Empty(t, s.Items())
	})
}

func TestRestoreOrderSplit(t *testing.T) {
	t.Run("should rebuild with items and timestamp", func(t *testing.T) {
		splitID := kernel.NewUUID()
		createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
		item, err := split.RestoreItem(kernel.NewUUID(), splitID, kernel.NewUUID(), kernel.NewUUID(), 3)
		require.NoError(t, err)

		s, err := split.RestoreOrderSplit(
			splitID, kernel.NewUUID(), kernel.NewUUID(),
			"address change", nil, createdAt, []*split.Item{item},
		)

		require.NoError(t, err)
		assert.Equal(t, createdAt, s.CreatedAt())
		require.Len(t, s.Items(), 1)
		assert.Equal(t, 3, s.Items()[0].Quantity())
	})
}

func TestOrderSplit_Validate(t *testing.T) {
	t.Run("should fail for nil split", func(t *testing.T) {
		var s *split.OrderSplit

		require.Error(t, s.Validate())
	})

	t.Run("should fail for zero value split", func(t *testing.T) {
		var s split.OrderSplit

		err := s.Validate()

		require.Error(t, err)
		assert.Equal(t, split.ErrSplitIsNotConstructed, err)
	})
}
