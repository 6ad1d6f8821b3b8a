package dispute

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agritrace/internal/pkg/errs"
)

func TestStatusFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected Status
		valid    bool
	}{
		{"OPEN", StatusOpen, true},
		{"RESOLVED", StatusResolved, true},
		{"ESCALATED", StatusEscalated, true},
		{"CLOSED", StatusClosed, true},
		{"open", StatusUnknown, false},
		{"", StatusUnknown, false},
		{"PENDING", StatusUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, err := StatusFromString(tt.input)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, status)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	allowed := map[Status][]Status{
		StatusOpen: {StatusResolved, StatusEscalated, StatusClosed},
	}

	all := []Status{StatusOpen, StatusResolved, StatusEscalated, StatusClosed}

	isAllowed := func(from, to Status) bool {
		for _, s := range allowed[from] {
			if s == to {
				return true
			}
		}
		return false
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(from.String()+"_to_"+to.String(), func(t *testing.T) {
				next, err := from.TransitionTo(to)

				if isAllowed(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, next)
					return
				}

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)

				var transitionErr *errs.InvalidStateTransitionError
				require.True(t, errors.As(err, &transitionErr))
				assert.Equal(t, from.String(), transitionErr.From)
				assert.Equal(t, to.String(), transitionErr.To)
			})
		}
	}
}

func TestStatusTerminalStatusesHaveNoExits(t *testing.T) {
	targets := []Status{StatusOpen, StatusResolved, StatusEscalated, StatusClosed}

	for _, terminal := range []Status{StatusResolved, StatusEscalated, StatusClosed} {
		for _, target := range targets {
			assert.False(t, terminal.CanTransitionTo(target),
				"%s should not allow transition to %s", terminal, target)
		}
	}
}
