package order

import (
	"fmt"

	"agritrace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the custody-transfer workflow.
//
// Status transitions:
//
//	Placed ──> Accepted ──> Shipped ──> Completed
//	   │           │
//	   └───────────┴──> Cancelled
//
// Completed and Cancelled are terminal; no further transitions are allowed.
// Status is a value object that validates transitions against a data-driven
// table and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPlaced is the initial status when a buyer places an order.
	StatusPlaced

	// StatusAccepted means the seller has accepted the order.
	StatusAccepted

	// StatusShipped means the seller has shipped the crop.
	StatusShipped

	// StatusCompleted means the buyer confirmed delivery and ownership has
	// been transferred. Terminal.
	StatusCompleted

	// StatusCancelled means the order was cancelled or rejected before
	// completion. Terminal.
	StatusCancelled
)

// transitionTable is the authoritative set of permitted order transitions,
// keyed by current status. Everything not listed here is forbidden.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		StatusPlaced:    {StatusAccepted, StatusCancelled},
		StatusAccepted:  {StatusShipped, StatusCancelled},
		StatusShipped:   {StatusCompleted},
		StatusCompleted: {},
		StatusCancelled: {},
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPlaced:    "PLACED",
		StatusAccepted:  "ACCEPTED",
		StatusShipped:   "SHIPPED",
		StatusCompleted: "COMPLETED",
		StatusCancelled: "CANCELLED",
	}
}

// StatusFromString parses the persisted representation of an order status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order status", fmt.Errorf("%q is not a valid order status", s))
}

// String returns the persisted name of the status, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := transitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	targets, ok := transitionTable()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo reports whether the transition from s to target is in the
// permitted table. It is a pure predicate with no side effects, used by the
// mutating operations and exposed to read-only callers that want to pre-check
// feasibility without acting.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the new status after validating the transition.
//
// Returns:
//   - (target, nil) when the (s, target) pair is in the transition table
//   - (StatusUnknown, *errs.InvalidStateTransitionError) carrying both
//     states otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidStateTransitionError("order", s.String(), target.String())
	}
	return target, nil
}
