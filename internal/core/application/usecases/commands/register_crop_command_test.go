package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agritrace/internal/core/application/usecases/commands"
	"agritrace/internal/core/domain/model/kernel"
)

func TestNewRegisterCropCommand(t *testing.T) {
	farmer := newTestParty(t, "farmer@greenfields.example", kernel.RoleFarmer)
	harvest := time.Now().UTC().AddDate(0, -1, 0)

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewRegisterCropCommand(
			kernel.NewUUID(), farmer, "Basmati Rice", 250, harvest, "Punjab", "CERT-77")
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "Basmati Rice", cmd.Name())
		assert.Equal(t, 250.0, cmd.Quantity())
		assert.Equal(t, "CERT-77", cmd.CertificateRef())
	})

	t.Run("certificate is optional", func(t *testing.T) {
		_, err := commands.NewRegisterCropCommand(
			kernel.NewUUID(), farmer, "Basmati Rice", 250, harvest, "Punjab", "")
		assert.NoError(t, err)
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		tests := map[string]func() error{
			"empty name": func() error {
				_, err := commands.NewRegisterCropCommand(
					kernel.NewUUID(), farmer, "", 250, harvest, "Punjab", "")
				return err
			},
			"zero quantity": func() error {
				_, err := commands.NewRegisterCropCommand(
					kernel.NewUUID(), farmer, "Basmati Rice", 0, harvest, "Punjab", "")
				return err
			},
			"negative quantity": func() error {
				_, err := commands.NewRegisterCropCommand(
					kernel.NewUUID(), farmer, "Basmati Rice", -5, harvest, "Punjab", "")
				return err
			},
			"zero harvest date": func() error {
				_, err := commands.NewRegisterCropCommand(
					kernel.NewUUID(), farmer, "Basmati Rice", 250, time.Time{}, "Punjab", "")
				return err
			},
			"empty location": func() error {
				_, err := commands.NewRegisterCropCommand(
					kernel.NewUUID(), farmer, "Basmati Rice", 250, harvest, "", "")
				return err
			},
			"unconstructed actor": func() error {
				_, err := commands.NewRegisterCropCommand(
					kernel.NewUUID(), kernel.Party{}, "Basmati Rice", 250, harvest, "Punjab", "")
				return err
			},
		}

		for name, construct := range tests {
			t.Run(name, func(t *testing.T) {
				assert.Error(t, construct())
			})
		}
	})

	t.Run("zero value command does not validate", func(t *testing.T) {
		var cmd commands.RegisterCropCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrRegisterCropCommandIsNotConstructed)
	})
}
