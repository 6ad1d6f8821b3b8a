package order

import (
	"errors"
	"fmt"
	"time"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a proposed or executed transfer of a crop between two
// parties. It is the aggregate root for the order lifecycle from placement
// through acceptance, shipping, and completion (or cancellation).
//
// Order follows these invariants:
//   - Buyer and seller are distinct parties
//   - Requested quantity is positive and, at creation time, does not exceed
//     the crop's quantity (checked by the placing operation)
//   - Status transitions follow the table in transitionTable
//   - Once in a terminal status (Completed, Cancelled) no further mutation
//     is permitted
//
// Order transitions drive the paired crop transitions; that coupling lives
// in the command handlers so each compound mutation runs inside a single
// transaction.
type Order struct {
	id              kernel.UUID
	cropID          kernel.UUID
	buyer           kernel.Party
	seller          kernel.Party
	status          Status
	quantity        float64
	price           float64
	deliveryAddress string
	notes           string
	rejectionReason string
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewOrder creates a new Order in StatusPlaced.
// The seller is the crop's current owner at creation time; the caller passes
// it explicitly so the aggregate can enforce buyer != seller.
func NewOrder(
	id kernel.UUID,
	cropID kernel.UUID,
	buyer kernel.Party,
	seller kernel.Party,
	quantity float64,
	price float64,
	deliveryAddress string,
	notes string,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		notes:         notes,
		status:        StatusPlaced,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCropID(cropID),
		o.setParties(buyer, seller),
		o.setQuantity(quantity),
		o.setPrice(price),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
func RestoreOrder(
	id kernel.UUID,
	cropID kernel.UUID,
	buyer kernel.Party,
	seller kernel.Party,
	status Status,
	quantity float64,
	price float64,
	deliveryAddress string,
	notes string,
	rejectionReason string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		notes:           notes,
		rejectionReason: rejectionReason,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCropID(cropID),
		o.setParties(buyer, seller),
		o.setStatus(status),
		o.setQuantity(quantity),
		o.setPrice(price),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CropID returns the identifier of the crop being transferred.
func (o *Order) CropID() kernel.UUID {
	return o.cropID
}

// Buyer returns the party that placed the order.
func (o *Order) Buyer() kernel.Party {
	return o.buyer
}

// Seller returns the party that owned the crop when the order was placed.
func (o *Order) Seller() kernel.Party {
	return o.seller
}

// Status returns the current order status.
func (o *Order) Status() Status {
	return o.status
}

// Quantity returns the requested quantity.
func (o *Order) Quantity() float64 {
	return o.quantity
}

// Price returns the offered price.
func (o *Order) Price() float64 {
	return o.price
}

// DeliveryAddress returns where the crop should be delivered.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Notes returns the buyer's free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// RejectionReason returns why the seller rejected the order.
// Empty unless the order was rejected.
func (o *Order) RejectionReason() string {
	return o.rejectionReason
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsBuyer reports whether the party is the order's buyer.
func (o *Order) IsBuyer(party kernel.Party) bool {
	return o.buyer.IsEqual(party)
}

// IsSeller reports whether the party is the order's seller.
func (o *Order) IsSeller(party kernel.Party) bool {
	return o.seller.IsEqual(party)
}

// Accept transitions the order Placed -> Accepted.
func (o *Order) Accept() error {
	return o.transitionTo(StatusAccepted)
}

// Ship transitions the order Accepted -> Shipped.
func (o *Order) Ship() error {
	return o.transitionTo(StatusShipped)
}

// Complete transitions the order Shipped -> Completed.
// The caller is responsible for running the ownership transfer orchestration
// (crop owner reassignment, SHIPPED -> DELIVERED, ownership-transfer ledger
// entry) in the same transaction.
func (o *Order) Complete() error {
	return o.transitionTo(StatusCompleted)
}

// Cancel transitions the order to Cancelled from Placed or Accepted.
func (o *Order) Cancel() error {
	return o.transitionTo(StatusCancelled)
}

// Reject cancels a Placed order recording the seller's reason.
func (o *Order) Reject(reason string) error {
	if o.status != StatusPlaced {
		return errs.NewInvalidStateTransitionError("order", o.status.String(), StatusCancelled.String())
	}
	if reason == "" {
		reason = "no reason provided"
	}

	o.status = StatusCancelled
	o.rejectionReason = reason
	o.touch()
	return nil
}

func (o *Order) transitionTo(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCropID(cropID kernel.UUID) error {
	if err := cropID.Validate(); err != nil {
		return err
	}
	o.cropID = cropID
	return nil
}

func (o *Order) setParties(buyer, seller kernel.Party) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	if err := seller.Validate(); err != nil {
		return err
	}
	if buyer.IsEqual(seller) {
		return errs.NewValueIsInvalidErrorWithCause(
			"buyer", fmt.Errorf("buyer %s is the seller of the crop", buyer.ID()))
	}

	o.buyer = buyer
	o.seller = seller
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%v is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%v is negative", price))
	}
	o.price = price
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}
