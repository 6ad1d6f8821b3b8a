package dispute

import (
	"fmt"

	"agritrace/internal/pkg/errs"
)

// Status represents the state of a dispute.
//
// Status transitions:
//
//	Open ──> Resolved
//	   │──> Escalated
//	   └──> Closed
//
// Resolved, Escalated, and Closed are only reachable from Open, and none of
// them is reachable from another without an explicit administrative action
// (which this core does not provide: the three are effectively terminal).
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusOpen is the initial status; the only one in which the dispute's
	// description and evidence may still be updated.
	StatusOpen

	// StatusResolved means an administrator recorded a resolution.
	StatusResolved

	// StatusEscalated means the dispute was handed up for further review.
	StatusEscalated

	// StatusClosed means the dispute was administratively closed.
	StatusClosed
)

func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		StatusOpen:      {StatusResolved, StatusEscalated, StatusClosed},
		StatusResolved:  {},
		StatusEscalated: {},
		StatusClosed:    {},
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusOpen:      "OPEN",
		StatusResolved:  "RESOLVED",
		StatusEscalated: "ESCALATED",
		StatusClosed:    "CLOSED",
	}
}

// StatusFromString parses the persisted representation of a dispute status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"dispute status", fmt.Errorf("%q is not a valid dispute status", s))
}

// String returns the persisted name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := transitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"dispute status", fmt.Errorf("%d is not a valid dispute status", s))
	}
	return nil
}

// CanTransitionTo reports whether the transition from s to target is
// permitted.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the new status after validating the transition.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidStateTransitionError("dispute", s.String(), target.String())
	}
	return target, nil
}
