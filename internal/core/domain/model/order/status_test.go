package order_test

import (
	"testing"

	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all lifecycle statuses", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	expected := map[order.Status]string{
		order.Pending:        "pending",
		order.Confirmed:      "confirmed",
		order.Priced:         "priced",
		order.Assigned:       "assigned",
		order.OutForDelivery: "out_for_delivery",
		order.Delivered:      "delivered",
		order.Completed:      "completed",
		order.Cancelled:      "cancelled",
	}

	for status, name := range expected {
		assert.Equal(t, name, status.String())
	}
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			parsed, err := order.StatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unrecognized names", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")

		require.Error(t, err)
	})

	t.Run("should reject unknown", func(t *testing.T) {
		_, err := order.StatusFromString("unknown")

		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	for _, s := range []order.Status{
		order.Pending, order.Confirmed, order.Priced,
		order.Assigned, order.OutForDelivery, order.Delivered,
	} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatus_ValidateCanHaveDriver(t *testing.T) {
	t.Run("pre-assignment statuses must not have a driver", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Confirmed, order.Priced} {
			require.NoError(t, s.ValidateCanHaveDriver(false), s.String())
			require.Error(t, s.ValidateCanHaveDriver(true), s.String())
		}
	})

	t.Run("post-assignment statuses must have a driver", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Assigned, order.OutForDelivery, order.Delivered, order.Completed,
		} {
			require.NoError(t, s.ValidateCanHaveDriver(true), s.String())
			require.Error(t, s.ValidateCanHaveDriver(false), s.String())
		}
	})

	t.Run("cancelled accepts both forms", func(t *testing.T) {
		require.NoError(t, order.Cancelled.ValidateCanHaveDriver(true))
		require.NoError(t, order.Cancelled.ValidateCanHaveDriver(false))
	})
}
