package provenance_test

import (
	"testing"
	"time"

	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/provenance"
	"agritrace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actor(t *testing.T) kernel.Party {
	t.Helper()
	p, err := kernel.NewParty(kernel.NewUUID(), "farmer@example.com", kernel.RoleFarmer)
	require.NoError(t, err)
	return p
}

func TestNewEntry(t *testing.T) {
	cropID := kernel.NewUUID()

	t.Run("creates state-change entry", func(t *testing.T) {
		e, err := provenance.NewEntry(kernel.NewUUID(), cropID,
			provenance.ActionStateChange, crop.StateListed, crop.StateOrdered, actor(t))

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, provenance.ActionStateChange, e.Action())
		assert.Equal(t, crop.StateListed, e.FromState())
		assert.Equal(t, crop.StateOrdered, e.ToState())
		assert.False(t, e.RecordedAt().IsZero())
	})

	t.Run("creation entry has no prior state", func(t *testing.T) {
		e, err := provenance.NewEntry(kernel.NewUUID(), cropID,
			provenance.ActionCreated, crop.StateUnknown, crop.StateCreated, actor(t))

		require.NoError(t, err)
		assert.Equal(t, crop.StateUnknown, e.FromState())
	})

	t.Run("creation entry rejects a prior state", func(t *testing.T) {
		_, err := provenance.NewEntry(kernel.NewUUID(), cropID,
			provenance.ActionCreated, crop.StateListed, crop.StateCreated, actor(t))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("non-creation entry requires a valid prior state", func(t *testing.T) {
		_, err := provenance.NewEntry(kernel.NewUUID(), cropID,
			provenance.ActionStateChange, crop.StateUnknown, crop.StateOrdered, actor(t))

		require.Error(t, err)
	})

	t.Run("rejects unknown action", func(t *testing.T) {
		_, err := provenance.NewEntry(kernel.NewUUID(), cropID,
			provenance.Action("AUDITED"), crop.StateListed, crop.StateOrdered, actor(t))

		require.Error(t, err)
	})

	t.Run("rejects unconstructed actor", func(t *testing.T) {
		var nobody kernel.Party

		_, err := provenance.NewEntry(kernel.NewUUID(), cropID,
			provenance.ActionStateChange, crop.StateListed, crop.StateOrdered, nobody)

		require.Error(t, err)
	})
}

func TestEntry_Description(t *testing.T) {
	recorded := time.Date(2026, 8, 15, 12, 30, 0, 0, time.UTC)
	e, err := provenance.RestoreEntry(kernel.NewUUID(), kernel.NewUUID(),
		provenance.ActionOwnershipTransfer, crop.StateShipped, crop.StateDelivered,
		actor(t), recorded)
	require.NoError(t, err)

	assert.Equal(t, "OWNERSHIP_TRANSFER at 2026-08-15T12:30:00Z", e.Description())
}

func TestAction_Validate(t *testing.T) {
	for _, a := range []provenance.Action{
		provenance.ActionCreated,
		provenance.ActionStateChange,
		provenance.ActionOwnershipTransfer,
	} {
		require.NoError(t, a.Validate())
	}
	require.Error(t, provenance.Action("").Validate())
	require.Error(t, provenance.Action("DELETED").Validate())
}
