package dispute

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/order"
	"agritrace/internal/pkg/errs"
)

const testToken = "9f2d0c6a1b8e4d7c3a5f0e9d8c7b6a5f4e3d2c1b0a9f8e7d6c5b4a3f2e1d0c9b"

func newParty(t *testing.T, identity string, role kernel.Role) kernel.Party {
	t.Helper()

	id := kernel.NewUUID()

	party, err := kernel.NewParty(id, identity, role)
	require.NoError(t, err)
	return party
}

func newTestCrop(t *testing.T, owner kernel.Party) *crop.Crop {
	t.Helper()

	id := kernel.NewUUID()

	c, err := crop.NewCrop(id, "Basmati Rice", 250, time.Now().UTC().AddDate(0, -1, 0),
		"Punjab", "CERT-77", testToken, owner)
	require.NoError(t, err)
	return c
}

func newTestOrder(t *testing.T, cropID kernel.UUID, buyer, seller kernel.Party) *order.Order {
	t.Helper()

	id := kernel.NewUUID()

	o, err := order.NewOrder(id, cropID, buyer, seller, 100, 42.5, "12 Market Road", "")
	require.NoError(t, err)
	return o
}

func newTestDispute(t *testing.T, raiser kernel.Party) *Dispute {
	t.Helper()

	id := kernel.NewUUID()
	cropID := kernel.NewUUID()

	d, err := NewDispute(id, cropID, nil, raiser, "quantity short on delivery")
	require.NoError(t, err)
	return d
}

func TestNewDispute(t *testing.T) {
	raiser := newParty(t, "retailer@fresh.example", kernel.RoleRetailer)

	t.Run("opens with the supplied fields", func(t *testing.T) {
		id := kernel.NewUUID()
		cropID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		d, err := NewDispute(id, cropID, &orderID, raiser, "bags arrived damaged")
		require.NoError(t, err)

		assert.Equal(t, StatusOpen, d.Status())
		assert.True(t, d.ID().IsEqual(id))
		assert.True(t, d.CropID().IsEqual(cropID))
		require.NotNil(t, d.OrderID())
		assert.True(t, d.OrderID().IsEqual(orderID))
		assert.True(t, d.Raiser().IsEqual(raiser))
		assert.Equal(t, "bags arrived damaged", d.Description())
		assert.Empty(t, d.Resolution())
		assert.Nil(t, d.ResolvedAt())
		assert.Nil(t, d.EscalatedAt())
		assert.Nil(t, d.ClosedAt())
		assert.False(t, d.CreatedAt().IsZero())
		assert.NoError(t, d.Validate())
	})

	t.Run("order reference is optional", func(t *testing.T) {
		d := newTestDispute(t, raiser)
		assert.Nil(t, d.OrderID())
	})

	t.Run("empty description is rejected", func(t *testing.T) {
		id := kernel.NewUUID()
		cropID := kernel.NewUUID()

		_, err := NewDispute(id, cropID, nil, raiser, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed raiser is rejected", func(t *testing.T) {
		id := kernel.NewUUID()
		cropID := kernel.NewUUID()

		_, err := NewDispute(id, cropID, nil, kernel.Party{}, "whatever")
		assert.Error(t, err)
	})
}

func TestDisputeResolve(t *testing.T) {
	raiser := newParty(t, "retailer@fresh.example", kernel.RoleRetailer)

	t.Run("records resolution and notes", func(t *testing.T) {
		d := newTestDispute(t, raiser)

		err := d.Resolve("partial refund issued", "verified against delivery receipt")
		require.NoError(t, err)

		assert.Equal(t, StatusResolved, d.Status())
		assert.Equal(t, "partial refund issued", d.Resolution())
		assert.Equal(t, "verified against delivery receipt", d.AdminNotes())
		require.NotNil(t, d.ResolvedAt())
	})

	t.Run("requires a resolution", func(t *testing.T) {
		d := newTestDispute(t, raiser)

		err := d.Resolve("", "notes")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, StatusOpen, d.Status())
	})

	t.Run("cannot resolve twice", func(t *testing.T) {
		d := newTestDispute(t, raiser)
		require.NoError(t, d.Resolve("refund", ""))

		err := d.Resolve("refund again", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestDisputeEscalate(t *testing.T) {
	raiser := newParty(t, "retailer@fresh.example", kernel.RoleRetailer)

	t.Run("records the reason", func(t *testing.T) {
		d := newTestDispute(t, raiser)

		err := d.Escalate("no agreement after two weeks")
		require.NoError(t, err)

		assert.Equal(t, StatusEscalated, d.Status())
		assert.Equal(t, "no agreement after two weeks", d.EscalationReason())
		require.NotNil(t, d.EscalatedAt())
	})

	t.Run("requires a reason", func(t *testing.T) {
		d := newTestDispute(t, raiser)

		err := d.Escalate("")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("closed dispute cannot be escalated", func(t *testing.T) {
		d := newTestDispute(t, raiser)
		require.NoError(t, d.Close("raised in error"))

		err := d.Escalate("second thoughts")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestDisputeClose(t *testing.T) {
	raiser := newParty(t, "retailer@fresh.example", kernel.RoleRetailer)

	t.Run("records the reason", func(t *testing.T) {
		d := newTestDispute(t, raiser)

		err := d.Close("settled outside the platform")
		require.NoError(t, err)

		assert.Equal(t, StatusClosed, d.Status())
		assert.Equal(t, "settled outside the platform", d.ClosureReason())
		require.NotNil(t, d.ClosedAt())
	})

	t.Run("requires a reason", func(t *testing.T) {
		d := newTestDispute(t, raiser)

		err := d.Close("")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, StatusOpen, d.Status())
	})
}

func TestDisputeUpdateDetails(t *testing.T) {
	raiser := newParty(t, "retailer@fresh.example", kernel.RoleRetailer)

	t.Run("updates both fields while open", func(t *testing.T) {
		d := newTestDispute(t, raiser)

		err := d.UpdateDetails("quantity short by 40kg", "weighbridge ticket #1031")
		require.NoError(t, err)

		assert.Equal(t, "quantity short by 40kg", d.Description())
		assert.Equal(t, "weighbridge ticket #1031", d.Evidence())
	})

	t.Run("empty argument leaves the field untouched", func(t *testing.T) {
		d := newTestDispute(t, raiser)
		original := d.Description()

		err := d.UpdateDetails("", "photo of the shipment")
		require.NoError(t, err)

		assert.Equal(t, original, d.Description())
		assert.Equal(t, "photo of the shipment", d.Evidence())
	})

	t.Run("requires at least one field", func(t *testing.T) {
		d := newTestDispute(t, raiser)

		err := d.UpdateDetails("", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("frozen after leaving open", func(t *testing.T) {
		d := newTestDispute(t, raiser)
		require.NoError(t, d.Resolve("refund", ""))

		err := d.UpdateDetails("new description", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, "quantity short on delivery", d.Description())
	})
}

func TestDisputeCanBeAccessedBy(t *testing.T) {
	farmer := newParty(t, "farmer@greenfields.example", kernel.RoleFarmer)
	retailer := newParty(t, "retailer@fresh.example", kernel.RoleRetailer)
	distributor := newParty(t, "distributor@haul.example", kernel.RoleDistributor)
	stranger := newParty(t, "stranger@elsewhere.example", kernel.RoleConsumer)

	c := newTestCrop(t, farmer)
	o := newTestOrder(t, c.ID(), retailer, farmer)

	id := kernel.NewUUID()
	orderID := o.ID()

	d, err := NewDispute(id, c.ID(), &orderID, distributor, "label mismatch")
	require.NoError(t, err)

	t.Run("raiser has access", func(t *testing.T) {
		assert.True(t, d.CanBeAccessedBy(distributor, c, o))
	})

	t.Run("crop owner has access", func(t *testing.T) {
		assert.True(t, d.CanBeAccessedBy(farmer, c, o))
	})

	t.Run("order buyer has access", func(t *testing.T) {
		assert.True(t, d.CanBeAccessedBy(retailer, c, o))
	})

	t.Run("stranger has no access", func(t *testing.T) {
		assert.False(t, d.CanBeAccessedBy(stranger, c, o))
	})

	t.Run("nil order narrows access to raiser and owner", func(t *testing.T) {
		assert.True(t, d.CanBeAccessedBy(distributor, c, nil))
		assert.True(t, d.CanBeAccessedBy(farmer, c, nil))
		assert.False(t, d.CanBeAccessedBy(retailer, c, nil))
	})
}

func TestRestoreDispute(t *testing.T) {
	raiser := newParty(t, "retailer@fresh.example", kernel.RoleRetailer)

	id := kernel.NewUUID()
	cropID := kernel.NewUUID()

	createdAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	resolvedAt := time.Date(2026, 3, 12, 16, 30, 0, 0, time.UTC)

	t.Run("round-trips every field", func(t *testing.T) {
		d, err := RestoreDispute(id, cropID, nil, raiser, "bags damaged",
			StatusResolved, "refund", "checked photos", "", "", "photo set",
			createdAt, resolvedAt, &resolvedAt, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, StatusResolved, d.Status())
		assert.Equal(t, "refund", d.Resolution())
		assert.Equal(t, "checked photos", d.AdminNotes())
		assert.Equal(t, "photo set", d.Evidence())
		assert.Equal(t, createdAt, d.CreatedAt())
		require.NotNil(t, d.ResolvedAt())
		assert.Equal(t, resolvedAt, *d.ResolvedAt())
		assert.NoError(t, d.Validate())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := RestoreDispute(id, cropID, nil, raiser, "bags damaged",
			StatusUnknown, "", "", "", "", "",
			createdAt, createdAt, nil, nil, nil)
		assert.Error(t, err)
	})
}

func TestDisputeValidate(t *testing.T) {
	t.Run("nil dispute", func(t *testing.T) {
		var d *Dispute
		assert.ErrorIs(t, d.Validate(), ErrDisputeIsNotConstructed)
	})

	t.Run("zero value dispute", func(t *testing.T) {
		assert.ErrorIs(t, (&Dispute{}).Validate(), ErrDisputeIsNotConstructed)
	})
}
