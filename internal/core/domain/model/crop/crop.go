package crop

import (
	"errors"
	"fmt"
	"time"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/errs"
)

var (
	// ErrCropIsNotConstructed is returned when a Crop instance was not created
	// through NewCrop or RestoreCrop. This ensures all crops are validated.
	ErrCropIsNotConstructed = errors.New("Crop must be created via NewCrop or RestoreCrop")
)

// Crop represents a harvested crop batch tracked through the custody chain.
// It is the aggregate root for the crop lifecycle, from registration through
// listing, ordering, shipping, delivery, and closure.
//
// Crop follows these invariants:
//   - Must have a valid unique identifier and a valid current owner
//   - Quantity must be positive
//   - The trace token is assigned exactly once at creation and never changes
//   - State transitions follow the table in transitionTable
//   - Version strictly increases on every persisted mutation (enforced by the
//     storage adapter's compare-and-swap write path)
//   - Can only be created through NewCrop or RestoreCrop
//
// Transitioning a crop never writes a ledger entry by itself; the command
// handler driving the transition is responsible for pairing it with a
// provenance entry in the same transaction.
type Crop struct {
	id             kernel.UUID
	name           string
	quantity       float64
	harvestDate    time.Time
	location       string
	certificateRef string
	traceToken     string
	owner          kernel.Party
	state          State
	createdAt      time.Time
	updatedAt      time.Time
	version        int64

	isConstructed bool
}

// NewCrop creates a new Crop in StateCreated, owned by its registering party.
// Timestamps are stamped explicitly here rather than by persistence hooks.
//
// Parameters:
//   - id: unique identifier for the crop
//   - name: crop batch name (required)
//   - quantity: harvested quantity (must be positive)
//   - harvestDate: when the batch was harvested (required)
//   - location: where the batch was harvested (required)
//   - certificateRef: optional reference to an external certificate
//   - traceToken: the deterministic public identifier (required, immutable)
//   - owner: the registering party, becomes the current owner
func NewCrop(
	id kernel.UUID,
	name string,
	quantity float64,
	harvestDate time.Time,
	location string,
	certificateRef string,
	traceToken string,
	owner kernel.Party,
) (*Crop, error) {
	now := time.Now().UTC()
	crop := &Crop{
		certificateRef: certificateRef,
		state:          StateCreated,
		createdAt:      now,
		updatedAt:      now,
		version:        1,
		isConstructed:  true,
	}

	if err := errors.Join(
		crop.setID(id),
		crop.setName(name),
		crop.setQuantity(quantity),
		crop.setHarvestDate(harvestDate),
		crop.setLocation(location),
		crop.setTraceToken(traceToken),
		crop.setOwner(owner),
	); err != nil {
		return nil, err
	}

	return crop, nil
}

// RestoreCrop reconstructs a Crop aggregate from persistent storage.
// Unlike NewCrop it accepts the persisted state, timestamps, and version
// as-is, but still validates every field so corrupted rows cannot produce
// an invalid aggregate.
func RestoreCrop(
	id kernel.UUID,
	name string,
	quantity float64,
	harvestDate time.Time,
	location string,
	certificateRef string,
	traceToken string,
	owner kernel.Party,
	state State,
	createdAt time.Time,
	updatedAt time.Time,
	version int64,
) (*Crop, error) {
	crop := &Crop{
		certificateRef: certificateRef,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		crop.setID(id),
		crop.setName(name),
		crop.setQuantity(quantity),
		crop.setHarvestDate(harvestDate),
		crop.setLocation(location),
		crop.setTraceToken(traceToken),
		crop.setOwner(owner),
		crop.setState(state),
		crop.setVersion(version),
	); err != nil {
		return nil, err
	}

	return crop, nil
}

// Validate ensures the Crop instance was properly constructed.
func (c *Crop) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCropIsNotConstructed
	}
	return nil
}

// IsEqual compares two crops by their unique identifiers.
func (c *Crop) IsEqual(other *Crop) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the crop's system-internal identifier.
func (c *Crop) ID() kernel.UUID {
	return c.id
}

// Name returns the crop batch name.
func (c *Crop) Name() string {
	return c.name
}

// Quantity returns the harvested quantity.
func (c *Crop) Quantity() float64 {
	return c.quantity
}

// HarvestDate returns when the batch was harvested.
func (c *Crop) HarvestDate() time.Time {
	return c.harvestDate
}

// Location returns where the batch was harvested.
func (c *Crop) Location() string {
	return c.location
}

// CertificateRef returns the optional certificate reference.
// Empty when no certificate was attached.
func (c *Crop) CertificateRef() string {
	return c.certificateRef
}

// TraceToken returns the crop's public identifier. This token, never the
// internal id, is what anonymous callers use to look the crop up.
func (c *Crop) TraceToken() string {
	return c.traceToken
}

// Owner returns the crop's current owner.
func (c *Crop) Owner() kernel.Party {
	return c.owner
}

// State returns the current lifecycle state.
func (c *Crop) State() State {
	return c.state
}

// CreatedAt returns when the crop was registered.
func (c *Crop) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns when the crop was last mutated.
func (c *Crop) UpdatedAt() time.Time {
	return c.updatedAt
}

// Version returns the optimistic concurrency counter as loaded from storage.
// The storage adapter increments it on every successful write; a stale value
// at write time surfaces as errs.ErrConcurrencyConflict.
func (c *Crop) Version() int64 {
	return c.version
}

// TransitionTo moves the crop to newState after validating the transition
// against the table. On failure the crop is left untouched and the returned
// error carries both states.
//
// This method never appends a ledger entry; the caller pairs the transition
// with a provenance entry so every state change is traceable to the
// operation that caused it.
func (c *Crop) TransitionTo(newState State) error {
	next, err := c.state.TransitionTo(newState)
	if err != nil {
		return err
	}

	c.state = next
	c.touch()
	return nil
}

// CanTransitionTo reports whether the crop could move to newState,
// without mutating anything.
func (c *Crop) CanTransitionTo(newState State) bool {
	return c.state.CanTransitionTo(newState)
}

// TransferOwnership reassigns the crop's current owner (and with it the
// current owner role) to the buyer. Called only from the complete-order
// orchestration, inside the same transaction as the SHIPPED -> DELIVERED
// transition and the ownership-transfer ledger entry.
func (c *Crop) TransferOwnership(buyer kernel.Party) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	if buyer.IsEqual(c.owner) {
		return errs.NewValueIsInvalidErrorWithCause(
			"buyer", fmt.Errorf("party %s already owns crop %s", buyer.ID(), c.id))
	}

	c.owner = buyer
	c.touch()
	return nil
}

func (c *Crop) touch() {
	c.updatedAt = time.Now().UTC()
}

func (c *Crop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Crop) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("crop name")
	}
	c.name = name
	return nil
}

func (c *Crop) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%v is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}

func (c *Crop) setHarvestDate(harvestDate time.Time) error {
	if harvestDate.IsZero() {
		return errs.NewValueIsRequiredError("harvest date")
	}
	c.harvestDate = harvestDate
	return nil
}

func (c *Crop) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	c.location = location
	return nil
}

func (c *Crop) setTraceToken(traceToken string) error {
	if traceToken == "" {
		return errs.NewValueIsRequiredError("trace token")
	}
	c.traceToken = traceToken
	return nil
}

func (c *Crop) setOwner(owner kernel.Party) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	c.owner = owner
	return nil
}

func (c *Crop) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	c.state = state
	return nil
}

func (c *Crop) setVersion(version int64) error {
	if version < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"version", fmt.Errorf("%d is not greater than 0", version))
	}
	c.version = version
	return nil
}
