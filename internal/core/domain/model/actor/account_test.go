package actor_test

import (
	"testing"

	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("should create active account", func(t *testing.T) {
		id := kernel.NewUUID()

		account, err := actor.NewAccount(id, "Sakura Sushi", actor.RoleRestaurant)

		require.NoError(t, err)
		require.NoError(t, account.Validate())
		assert.True(t, account.ID().IsEqual(id))
		assert.Equal(t, "Sakura Sushi", account.Name())
		assert.Equal(t, actor.RoleRestaurant, account.Role())
		assert.True(t, account.IsActive())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := actor.NewAccount(invalidID, "Sakura Sushi", actor.RoleRestaurant)

		require.Error(t, err)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := actor.NewAccount(kernel.NewUUID(), "", actor.RoleDriver)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid role", func(t *testing.T) {
		_, err := actor.NewAccount(kernel.NewUUID(), "Sakura Sushi", actor.RoleUnknown)

		require.Error(t, err)
	})

	t.Run("zero value account fails validation", func(t *testing.T) {
		var account actor.Account

		err := account.Validate()

		require.Error(t, err)
		assert.Equal(t, actor.ErrAccountIsNotConstructed, err)
	})

	t.Run("nil account fails validation", func(t *testing.T) {
		var account *actor.Account

		err := account.Validate()

		require.Error(t, err)
		assert.Equal(t, actor.ErrAccountIsNotConstructed, err)
	})
}

func TestRestoreAccount(t *testing.T) {
	t.Run("restores inactive account", func(t *testing.T) {
		id := kernel.NewUUID()

		account, err := actor.RestoreAccount(id, "Idle Driver", actor.RoleDriver, false)

		require.NoError(t, err)
		require.NoError(t, account.Validate())
		assert.False(t, account.IsActive())
		assert.False(t, account.IsActiveDriver())
	})

	t.Run("restores active account", func(t *testing.T) {
		account, err := actor.RestoreAccount(kernel.NewUUID(), "Busy Driver", actor.RoleDriver, true)

		require.NoError(t, err)
		assert.True(t, account.IsActiveDriver())
	})
}

func TestAccount_IsActiveDriver(t *testing.T) {
	t.Run("active driver", func(t *testing.T) {
		account, err := actor.NewAccount(kernel.NewUUID(), "Driver", actor.RoleDriver)

		require.NoError(t, err)
		assert.True(t, account.IsActiveDriver())
	})

	t.Run("deactivated driver is not eligible", func(t *testing.T) {
		account, err := actor.NewAccount(kernel.NewUUID(), "Driver", actor.RoleDriver)
		require.NoError(t, err)

		account.Deactivate()

		assert.False(t, account.IsActiveDriver())
		assert.False(t, account.IsActive())
	})

	t.Run("active restaurant is not a driver", func(t *testing.T) {
		account, err := actor.NewAccount(kernel.NewUUID(), "Sakura Sushi", actor.RoleRestaurant)

		require.NoError(t, err)
		assert.False(t, account.IsActiveDriver())
	})

	t.Run("activate restores eligibility", func(t *testing.T) {
		account, err := actor.NewAccount(kernel.NewUUID(), "Driver", actor.RoleDriver)
		require.NoError(t, err)

		account.Deactivate()
		account.Activate()

		assert.True(t, account.IsActiveDriver())
	})
}
