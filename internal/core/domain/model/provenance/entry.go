// Package provenance holds the append-only custody ledger of the system.
// An Entry records one lifecycle transition or ownership change of a crop.
// Entries are immutable: the type exposes no mutators, the repository port
// exposes no update or delete, and for a given crop the entries ordered by
// timestamp are the authoritative custody history.
package provenance

import (
	"errors"
	"fmt"
	"time"

	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/errs"
)

// Action is the controlled vocabulary of ledger entry labels.
type Action string

const (
	// ActionCreated marks the registration of a crop. The entry has no
	// from-state.
	ActionCreated Action = "CREATED"

	// ActionStateChange marks a lifecycle transition without an ownership
	// change, including the ORDERED -> LISTED reversal on cancellation.
	ActionStateChange Action = "STATE_CHANGE"

	// ActionOwnershipTransfer marks the atomic owner reassignment performed
	// when an order completes.
	ActionOwnershipTransfer Action = "OWNERSHIP_TRANSFER"
)

// Validate checks that the action is part of the controlled vocabulary.
func (a Action) Validate() error {
	switch a {
	case ActionCreated, ActionStateChange, ActionOwnershipTransfer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"action", fmt.Errorf("%q is not a valid ledger action", string(a)))
	}
}

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry is one immutable row of the provenance ledger.
type Entry struct {
	id        kernel.UUID
	cropID    kernel.UUID
	action    Action
	fromState crop.State
	toState   crop.State
	actor     kernel.Party
	recordedAt time.Time

	isConstructed bool
}

// NewEntry creates a ledger entry stamped with the current time.
// For ActionCreated the fromState must be crop.StateUnknown (a registration
// has no prior state); for every other action both states must be valid.
// Entries are only ever constructed by command handlers as part of a
// validated transition, inside the same transaction.
func NewEntry(
	id kernel.UUID,
	cropID kernel.UUID,
	action Action,
	fromState crop.State,
	toState crop.State,
	actor kernel.Party,
) (*Entry, error) {
	e := &Entry{
		action:        action,
		fromState:     fromState,
		recordedAt:    time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setCropID(cropID),
		e.validateAction(action, fromState),
		e.setToState(toState),
		e.setActor(actor),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEntry reconstructs a ledger entry from persistent storage.
func RestoreEntry(
	id kernel.UUID,
	cropID kernel.UUID,
	action Action,
	fromState crop.State,
	toState crop.State,
	actor kernel.Party,
	recordedAt time.Time,
) (*Entry, error) {
	e := &Entry{
		action:        action,
		fromState:     fromState,
		recordedAt:    recordedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setCropID(cropID),
		e.validateAction(action, fromState),
		e.setToState(toState),
		e.setActor(actor),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the Entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// CropID returns the crop this entry belongs to.
func (e *Entry) CropID() kernel.UUID {
	return e.cropID
}

// Action returns the entry's action label.
func (e *Entry) Action() Action {
	return e.action
}

// FromState returns the state before the transition.
// crop.StateUnknown for ActionCreated entries.
func (e *Entry) FromState() crop.State {
	return e.fromState
}

// ToState returns the state after the transition.
func (e *Entry) ToState() crop.State {
	return e.toState
}

// Actor returns the party that performed the transition, with its role at
// the time of the action.
func (e *Entry) Actor() kernel.Party {
	return e.actor
}

// RecordedAt returns when the entry was appended.
func (e *Entry) RecordedAt() time.Time {
	return e.recordedAt
}

// Description renders the entry the way the public trace view presents
// history: "<ACTION> at <timestamp>".
func (e *Entry) Description() string {
	return fmt.Sprintf("%s at %s", e.action, e.recordedAt.Format(time.RFC3339))
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setCropID(cropID kernel.UUID) error {
	if err := cropID.Validate(); err != nil {
		return err
	}
	e.cropID = cropID
	return nil
}

func (e *Entry) validateAction(action Action, fromState crop.State) error {
	if err := action.Validate(); err != nil {
		return err
	}
	if action == ActionCreated {
		if fromState != crop.StateUnknown {
			return errs.NewValueIsInvalidErrorWithCause(
				"from state", fmt.Errorf("a %s entry cannot have prior state %s", ActionCreated, fromState))
		}
		return nil
	}
	return fromState.Validate()
}

func (e *Entry) setToState(toState crop.State) error {
	if err := toState.Validate(); err != nil {
		return err
	}
	e.toState = toState
	return nil
}

func (e *Entry) setActor(actor kernel.Party) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	e.actor = actor
	return nil
}
