package kernel_test

import (
	"testing"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("valid roles round-trip through string", func(t *testing.T) {
		for _, role := range []kernel.Role{
			kernel.RoleFarmer,
			kernel.RoleDistributor,
			kernel.RoleRetailer,
			kernel.RoleConsumer,
			kernel.RoleAdmin,
		} {
			require.NoError(t, role.Validate())

			parsed, err := kernel.RoleFromString(role.String())
			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("unknown role is invalid", func(t *testing.T) {
		require.Error(t, kernel.RoleUnknown.Validate())
		assert.Equal(t, "UNKNOWN", kernel.RoleUnknown.String())
	})

	t.Run("parsing an unknown string fails", func(t *testing.T) {
		_, err := kernel.RoleFromString("WHOLESALER")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewParty(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("creates valid party", func(t *testing.T) {
		p, err := kernel.NewParty(validID, "farmer@example.com", kernel.RoleFarmer)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "farmer@example.com", p.Identity())
		assert.Equal(t, kernel.RoleFarmer, p.Role())
	})

	t.Run("fails with zero UUID", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := kernel.NewParty(zeroID, "farmer@example.com", kernel.RoleFarmer)

		require.Error(t, err)
	})

	t.Run("fails with empty identity", func(t *testing.T) {
		_, err := kernel.NewParty(validID, "", kernel.RoleFarmer)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with invalid role", func(t *testing.T) {
		_, err := kernel.NewParty(validID, "farmer@example.com", kernel.RoleUnknown)

		require.Error(t, err)
	})

	t.Run("zero value party fails validation", func(t *testing.T) {
		var p kernel.Party

		require.Error(t, p.Validate())
	})

	t.Run("equality is by identifier", func(t *testing.T) {
		a, _ := kernel.NewParty(validID, "a@example.com", kernel.RoleFarmer)
		b, _ := kernel.NewParty(validID, "b@example.com", kernel.RoleRetailer)
		c, _ := kernel.NewParty(kernel.NewUUID(), "a@example.com", kernel.RoleFarmer)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
