package crop

import (
	"fmt"

	"agritrace/internal/pkg/errs"
)

// State represents the lifecycle state of a crop batch.
// It implements a state machine with defined transitions to ensure crops
// follow the custody-chain workflow.
//
// State transitions:
//
//	Created ⇄ Listed ⇄ Ordered ──> Shipped ──> Delivered ──> Closed
//
// The backward edges are intentional: Listed -> Created unlists a crop, and
// Ordered -> Listed reverts the listing when an order is cancelled. They pair
// with the order lifecycle's cancellation behavior and must not be removed
// without treating it as a behavior change.
//
// State is a value object that validates transitions against a data-driven
// table and provides string representations for persistence and display.
type State int

const (
	// StateUnknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	StateUnknown State = iota

	// StateCreated is the initial state assigned at registration.
	StateCreated

	// StateListed means the crop is visible on the marketplace and orders
	// can be placed against it.
	StateListed

	// StateOrdered means an order against the crop has been accepted.
	StateOrdered

	// StateShipped means the crop is in transit to the buyer.
	StateShipped

	// StateDelivered means the crop reached the buyer and ownership has
	// been transferred.
	StateDelivered

	// StateClosed is the terminal state with no further transitions.
	StateClosed
)

// transitionTable is the authoritative set of permitted crop transitions,
// keyed by current state. Everything not listed here is forbidden.
// Represented as data rather than branching code so the table itself is
// directly testable.
func transitionTable() map[State][]State {
	return map[State][]State{
		StateCreated:   {StateListed},
		StateListed:    {StateOrdered, StateCreated},
		StateOrdered:   {StateShipped, StateListed},
		StateShipped:   {StateDelivered},
		StateDelivered: {StateClosed},
		StateClosed:    {},
	}
}

func getStateStrings() map[State]string {
	return map[State]string{
		StateUnknown:   "UNKNOWN",
		StateCreated:   "CREATED",
		StateListed:    "LISTED",
		StateOrdered:   "ORDERED",
		StateShipped:   "SHIPPED",
		StateDelivered: "DELIVERED",
		StateClosed:    "CLOSED",
	}
}

// StateFromString parses the persisted representation of a crop state.
func StateFromString(s string) (State, error) {
	for state, str := range getStateStrings() {
		if state != StateUnknown && str == s {
			return state, nil
		}
	}
	return StateUnknown, errs.NewValueIsInvalidErrorWithCause(
		"crop state", fmt.Errorf("%q is not a valid crop state", s))
}

// String returns the persisted name of the state, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks if the State value is valid.
// StateUnknown (0) and any other values are invalid.
func (s State) Validate() error {
	if _, ok := transitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"crop state", fmt.Errorf("%d is not a valid crop state", s))
	}
	return nil
}

// CanTransitionTo reports whether the transition from s to target is in the
// permitted table. It is a pure predicate with no side effects, used both by
// TransitionTo and by read-only feasibility checks.
func (s State) CanTransitionTo(target State) bool {
	for _, allowed := range transitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the new state after validating the transition.
//
// Returns:
//   - (target, nil) when the (s, target) pair is in the transition table
//   - (StateUnknown, *errs.InvalidStateTransitionError) carrying both states
//     otherwise
func (s State) TransitionTo(target State) (State, error) {
	if err := target.Validate(); err != nil {
		return StateUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StateUnknown, errs.NewInvalidStateTransitionError("crop", s.String(), target.String())
	}
	return target, nil
}
