package errs_test

import (
	"errors"
	"testing"

	"agritrace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("cropId", "123")

		assert.Equal(t, "cropId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 42 (cause: connection refused)",
			err.Error())
	})
}

func TestInvalidStateTransitionError(t *testing.T) {
	t.Run("carries both states", func(t *testing.T) {
		err := errs.NewInvalidStateTransitionError("crop", "LISTED", "DELIVERED")

		assert.Equal(t, "LISTED", err.From)
		assert.Equal(t, "DELIVERED", err.To)
		assert.Equal(t,
			"invalid state transition: crop cannot move from LISTED to DELIVERED",
			err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("terminal state")
		err := errs.NewInvalidStateTransitionErrorWithCause("order", "COMPLETED", "CANCELLED", cause)

		assert.Contains(t, err.Error(), "COMPLETED")
		assert.Contains(t, err.Error(), "(cause: terminal state)")
	})
}

func TestUnauthorizedError(t *testing.T) {
	err := errs.NewUnauthorizedError("order", "only seller can accept order")

	assert.Equal(t, "operation is not permitted: order: only seller can accept order", err.Error())
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestConcurrencyConflictError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewConcurrencyConflictError("crop", "7")

		assert.Equal(t, "concurrency conflict: crop 7 was modified concurrently", err.Error())
		require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	})

	t.Run("is distinct from other kinds", func(t *testing.T) {
		err := errs.NewConcurrencyConflictError("crop", "7")

		assert.NotErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("cropName")
		assert.Equal(t, "value is required: cropName", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid with cause", func(t *testing.T) {
		cause := errors.New("buyer equals seller")
		err := errs.NewValueIsInvalidErrorWithCause("buyer", cause)
		assert.Equal(t, "value is invalid: buyer (cause: buyer equals seller)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("out of range", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", -5, 0, 1000)
		assert.Equal(t, "value is invalid: -5 is quantity, min value is 0, max value is 1000", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "too\nlong", 0, 10)
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "invalid state transition", errs.ErrInvalidStateTransition.Error())
	assert.Equal(t, "operation is not permitted", errs.ErrUnauthorized.Error())
	assert.Equal(t, "concurrency conflict", errs.ErrConcurrencyConflict.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}
