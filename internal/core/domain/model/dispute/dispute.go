// Package dispute implements the secondary workflow anchored to a crop and,
// optionally, an order. A dispute runs independently of the main lifecycle
// but references the same entities, and its access rule is relational: the
// raiser, the crop's current owner, and the order's buyer/seller may see it.
package dispute

import (
	"errors"
	"time"

	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/order"
	"agritrace/internal/pkg/errs"
)

var (
	// ErrDisputeIsNotConstructed is returned when a Dispute instance was not
	// created through NewDispute or RestoreDispute.
	ErrDisputeIsNotConstructed = errors.New("Dispute must be created via NewDispute or RestoreDispute")

)

// Dispute is the aggregate root of the dispute workflow.
//
// Invariants:
//   - Always references a crop; the order reference is optional
//   - Once status leaves Open it only ever holds one of the terminal
//     statuses; there is no path between Resolved, Escalated, and Closed
//   - Description and evidence are mutable only while Open
type Dispute struct {
	id               kernel.UUID
	cropID           kernel.UUID
	orderID          *kernel.UUID
	raiser           kernel.Party
	description      string
	status           Status
	resolution       string
	adminNotes       string
	escalationReason string
	closureReason    string
	evidence         string
	createdAt        time.Time
	updatedAt        time.Time
	resolvedAt       *time.Time
	escalatedAt      *time.Time
	closedAt         *time.Time

	isConstructed bool
}

// NewDispute creates a new Dispute in StatusOpen.
// orderID may be nil when the dispute concerns only the crop.
func NewDispute(
	id kernel.UUID,
	cropID kernel.UUID,
	orderID *kernel.UUID,
	raiser kernel.Party,
	description string,
) (*Dispute, error) {
	now := time.Now().UTC()
	d := &Dispute{
		status:        StatusOpen,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setCropID(cropID),
		d.setOrderID(orderID),
		d.setRaiser(raiser),
		d.setDescription(description),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDispute reconstructs a Dispute aggregate from persistent storage.
//
//nolint:gocritic // the persistence layer round-trips every field
func RestoreDispute(
	id kernel.UUID,
	cropID kernel.UUID,
	orderID *kernel.UUID,
	raiser kernel.Party,
	description string,
	status Status,
	resolution string,
	adminNotes string,
	escalationReason string,
	closureReason string,
	evidence string,
	createdAt time.Time,
	updatedAt time.Time,
	resolvedAt *time.Time,
	escalatedAt *time.Time,
	closedAt *time.Time,
) (*Dispute, error) {
	d := &Dispute{
		resolution:       resolution,
		adminNotes:       adminNotes,
		escalationReason: escalationReason,
		closureReason:    closureReason,
		evidence:         evidence,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		resolvedAt:       resolvedAt,
		escalatedAt:      escalatedAt,
		closedAt:         closedAt,
		isConstructed:    true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setCropID(cropID),
		d.setOrderID(orderID),
		d.setRaiser(raiser),
		d.setDescription(description),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Dispute was properly constructed.
func (d *Dispute) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDisputeIsNotConstructed
	}
	return nil
}

// ID returns the dispute's unique identifier.
func (d *Dispute) ID() kernel.UUID {
	return d.id
}

// CropID returns the crop the dispute is anchored to.
func (d *Dispute) CropID() kernel.UUID {
	return d.cropID
}

// OrderID returns the optional order reference, nil when absent.
func (d *Dispute) OrderID() *kernel.UUID {
	return d.orderID
}

// Raiser returns the party that raised the dispute.
func (d *Dispute) Raiser() kernel.Party {
	return d.raiser
}

// Description returns the dispute description.
func (d *Dispute) Description() string {
	return d.description
}

// Status returns the dispute's current status.
func (d *Dispute) Status() Status {
	return d.status
}

// Resolution returns the recorded resolution, empty unless resolved.
func (d *Dispute) Resolution() string {
	return d.resolution
}

// AdminNotes returns the administrator's resolution notes.
func (d *Dispute) AdminNotes() string {
	return d.adminNotes
}

// EscalationReason returns why the dispute was escalated.
func (d *Dispute) EscalationReason() string {
	return d.escalationReason
}

// ClosureReason returns why the dispute was closed.
func (d *Dispute) ClosureReason() string {
	return d.closureReason
}

// Evidence returns the attached evidence text.
func (d *Dispute) Evidence() string {
	return d.evidence
}

// CreatedAt returns when the dispute was raised.
func (d *Dispute) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns when the dispute was last mutated.
func (d *Dispute) UpdatedAt() time.Time {
	return d.updatedAt
}

// ResolvedAt returns when the dispute was resolved, nil unless resolved.
func (d *Dispute) ResolvedAt() *time.Time {
	return d.resolvedAt
}

// EscalatedAt returns when the dispute was escalated, nil unless escalated.
func (d *Dispute) EscalatedAt() *time.Time {
	return d.escalatedAt
}

// ClosedAt returns when the dispute was closed, nil unless closed.
func (d *Dispute) ClosedAt() *time.Time {
	return d.closedAt
}

// Resolve moves the dispute Open -> Resolved, recording the resolution and
// the administrator's notes.
func (d *Dispute) Resolve(resolution, adminNotes string) error {
	if resolution == "" {
		return errs.NewValueIsRequiredError("resolution")
	}
	if err := d.transitionTo(StatusResolved); err != nil {
		return err
	}

	now := time.Now().UTC()
	d.resolution = resolution
	d.adminNotes = adminNotes
	d.resolvedAt = &now
	return nil
}

// Escalate moves the dispute Open -> Escalated, recording the reason.
func (d *Dispute) Escalate(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("escalation reason")
	}
	if err := d.transitionTo(StatusEscalated); err != nil {
		return err
	}

	now := time.Now().UTC()
	d.escalationReason = reason
	d.escalatedAt = &now
	return nil
}

// Close moves the dispute Open -> Closed, recording the reason.
func (d *Dispute) Close(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("closure reason")
	}
	if err := d.transitionTo(StatusClosed); err != nil {
		return err
	}

	now := time.Now().UTC()
	d.closureReason = reason
	d.closedAt = &now
	return nil
}

// UpdateDetails changes the description and/or evidence of an open dispute.
// Empty arguments leave the corresponding field untouched. Once the status
// has left Open the dispute is frozen and the update fails with an
// invalid-state-transition error carrying the terminal status.
func (d *Dispute) UpdateDetails(description, evidence string) error {
	if d.status != StatusOpen {
		return errs.NewInvalidStateTransitionError(
			"dispute", d.status.String(), StatusOpen.String())
	}
	if description == "" && evidence == "" {
		return errs.NewValueIsRequiredError("description or evidence")
	}

	if description != "" {
		d.description = description
	}
	if evidence != "" {
		d.evidence = evidence
	}
	d.touch()
	return nil
}

// CanBeAccessedBy reports whether the party may view or act on the dispute:
// the raiser, the referenced crop's current owner, or the buyer/seller of
// the referenced order. The crop must be the dispute's crop; the order may
// be nil when the dispute has no order reference.
func (d *Dispute) CanBeAccessedBy(party kernel.Party, c *crop.Crop, o *order.Order) bool {
	if d.raiser.IsEqual(party) {
		return true
	}
	if c != nil && c.Owner().IsEqual(party) {
		return true
	}
	if o != nil && (o.IsBuyer(party) || o.IsSeller(party)) {
		return true
	}
	return false
}

func (d *Dispute) transitionTo(target Status) error {
	next, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}

	d.status = next
	d.touch()
	return nil
}

func (d *Dispute) touch() {
	d.updatedAt = time.Now().UTC()
}

func (d *Dispute) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dispute) setCropID(cropID kernel.UUID) error {
	if err := cropID.Validate(); err != nil {
		return err
	}
	d.cropID = cropID
	return nil
}

func (d *Dispute) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Dispute) setRaiser(raiser kernel.Party) error {
	if err := raiser.Validate(); err != nil {
		return err
	}
	d.raiser = raiser
	return nil
}

func (d *Dispute) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	d.description = description
	return nil
}

func (d *Dispute) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
