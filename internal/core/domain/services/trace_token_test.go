package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agritrace/internal/core/domain/model/kernel"
)

var hexToken = regexp.MustCompile(`^[0-9a-f]{64}$`)

func newFarmer(t *testing.T) kernel.Party {
	t.Helper()

	id, err := kernel.UUIDFromString("0d4c9a6e-2f1b-4e8d-9c3a-5b7f0e1d2c3a")
	require.NoError(t, err)

	farmer, err := kernel.NewParty(id, "farmer@greenfields.example", kernel.RoleFarmer)
	require.NoError(t, err)
	return farmer
}

func TestTraceTokenGeneratorGenerate(t *testing.T) {
	generator := NewTraceTokenGenerator()
	farmer := newFarmer(t)
	harvest := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)

	registrationID, err := kernel.UUIDFromString("7a1e4d2c-8b5f-4a3e-9d0c-6e2f1b8a5d4c")
	require.NoError(t, err)

	t.Run("produces a 64 char lowercase hex token", func(t *testing.T) {
		token, err := generator.Generate(registrationID, "Basmati Rice", harvest, "Punjab", farmer)
		require.NoError(t, err)
		assert.Regexp(t, hexToken, token)
	})

	t.Run("is deterministic for identical inputs", func(t *testing.T) {
		first, err := generator.Generate(registrationID, "Basmati Rice", harvest, "Punjab", farmer)
		require.NoError(t, err)

		second, err := generator.Generate(registrationID, "Basmati Rice", harvest, "Punjab", farmer)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("harvest date compares by instant not zone", func(t *testing.T) {
		kolkata := time.FixedZone("IST", 5*3600+1800)
		sameInstant := harvest.In(kolkata)

		utcToken, err := generator.Generate(registrationID, "Basmati Rice", harvest, "Punjab", farmer)
		require.NoError(t, err)

		zonedToken, err := generator.Generate(registrationID, "Basmati Rice", sameInstant, "Punjab", farmer)
		require.NoError(t, err)

		assert.Equal(t, utcToken, zonedToken)
	})

	t.Run("any field change produces a different token", func(t *testing.T) {
		base, err := generator.Generate(registrationID, "Basmati Rice", harvest, "Punjab", farmer)
		require.NoError(t, err)

		otherID := kernel.NewUUID()

		variants := map[string]func() (string, error){
			"registration id": func() (string, error) {
				return generator.Generate(otherID, "Basmati Rice", harvest, "Punjab", farmer)
			},
			"name": func() (string, error) {
				return generator.Generate(registrationID, "Jasmine Rice", harvest, "Punjab", farmer)
			},
			"harvest date": func() (string, error) {
				return generator.Generate(registrationID, "Basmati Rice", harvest.AddDate(0, 0, 1), "Punjab", farmer)
			},
			"location": func() (string, error) {
				return generator.Generate(registrationID, "Basmati Rice", harvest, "Haryana", farmer)
			},
		}

		for field, generate := range variants {
			t.Run(field, func(t *testing.T) {
				token, err := generate()
				require.NoError(t, err)
				assert.NotEqual(t, base, token)
			})
		}
	})

	t.Run("separator cannot be faked by field concatenation", func(t *testing.T) {
		first, err := generator.Generate(registrationID, "Rice|Punjab", harvest, "North", farmer)
		require.NoError(t, err)

		second, err := generator.Generate(registrationID, "Rice", harvest, "Punjab|North", farmer)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("rejects incomplete inputs", func(t *testing.T) {
		_, err := generator.Generate(registrationID, "", harvest, "Punjab", farmer)
		assert.Error(t, err)

		_, err = generator.Generate(registrationID, "Basmati Rice", time.Time{}, "Punjab", farmer)
		assert.Error(t, err)

		_, err = generator.Generate(registrationID, "Basmati Rice", harvest, "", farmer)
		assert.Error(t, err)

		_, err = generator.Generate(kernel.UUID{}, "Basmati Rice", harvest, "Punjab", farmer)
		assert.Error(t, err)

		_, err = generator.Generate(registrationID, "Basmati Rice", harvest, "Punjab", kernel.Party{})
		assert.Error(t, err)
	})
}
