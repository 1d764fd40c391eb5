package order_test

import (
	"testing"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Pending,
		order.Processing,
		order.Shipped,
		order.Delivered,
		order.Cancelled,
		order.Refunded,
		order.OnHold,
	}
}

func legalPairs() map[order.Status][]order.Status {
	return map[order.Status][]order.Status{
		order.Pending:    {order.Processing, order.Cancelled, order.OnHold},
		order.Processing: {order.Shipped, order.Cancelled},
		order.Shipped:    {order.Delivered},
		order.Delivered:  {order.Refunded},
		order.Cancelled:  {},
		order.Refunded:   {},
		order.OnHold:     {order.Processing, order.Cancelled},
	}
}

func isLegal(from, to order.Status) bool {
	for _, target := range legalPairs()[from] {
		if target == to {
			return true
		}
	}
	return false
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow every legal transition", func(t *testing.T) {
		for from, targets := range legalPairs() {
			for _, to := range targets {
				next, err := from.TransitionTo(to)

				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, next)
			}
		}
	})

	t.Run("should reject every other transition", func(t *testing.T) {
		for _, from := range allStatuses() {
			for _, to := range allStatuses() {
				if isLegal(from, to) {
					continue
				}

				next, err := from.TransitionTo(to)

				require.Error(t, err, "%s -> %s", from, to)
				require.ErrorIs(t, err, errs.ErrDomainRuleViolation)
				assert.Equal(t, order.Status(0), next)
			}
		}
	})

	t.Run("should reject transition to self", func(t *testing.T) {
		for _, s := range allStatuses() {
			_, err := s.TransitionTo(s)

			require.Error(t, err, "%s -> %s", s, s)
		}
	})

	t.Run("should reject unknown target", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.StatusUnknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("terminal statuses have no way out", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Cancelled, order.Refunded} {
			for _, to := range allStatuses() {
				_, err := terminal.TransitionTo(to)

				require.Error(t, err, "%s -> %s", terminal, to)
			}
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, order.Pending.CanTransitionTo(order.Processing))
	assert.True(t, order.OnHold.CanTransitionTo(order.Processing))
	assert.False(t, order.Pending.CanTransitionTo(order.Shipped))
	assert.False(t, order.Shipped.CanTransitionTo(order.Cancelled))
	assert.False(t, order.Delivered.CanTransitionTo(order.Cancelled))
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should pass for defined statuses", func(t *testing.T) {
		for _, s := range allStatuses() {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should fail for unknown", func(t *testing.T) {
		require.Error(t, order.StatusUnknown.Validate())
	})

	t.Run("should fail for out of range value", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Processing", order.Processing.String())
	assert.Equal(t, "Shipped", order.Shipped.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Refunded", order.Refunded.String())
	assert.Equal(t, "OnHold", order.OnHold.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestPaymentStatus(t *testing.T) {
	t.Run("should validate defined values", func(t *testing.T) {
		for _, s := range []order.PaymentStatus{order.PaymentPending, order.PaymentPaid, order.PaymentRefunded} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should fail for unknown", func(t *testing.T) {
		require.Error(t, order.PaymentUnknown.Validate())
		require.Error(t, order.PaymentStatus(42).Validate())
	})

	t.Run("string representation", func(t *testing.T) {
		assert.Equal(t, "Pending", order.PaymentPending.String())
		assert.Equal(t, "Paid", order.PaymentPaid.String())
		assert.Equal(t, "Refunded", order.PaymentRefunded.String())
	})
}
