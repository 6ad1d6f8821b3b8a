package commands

import (
	"errors"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/errs"
	"agritrace/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a buyer's request to purchase a listed crop.
// Placing an order moves the crop LISTED -> ORDERED and opens the order
// lifecycle in PLACED status.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	cropID          kernel.UUID
	buyer           kernel.Party
	quantity        float64
	price           float64
	deliveryAddress string
	notes           string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a purchase order.
// Validates identifiers, the buying party, and the order terms.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	cropID kernel.UUID,
	buyer kernel.Party,
	quantity float64,
	price float64,
	deliveryAddress string,
	notes string,
) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCropID(cropID),
		orderCommand.setBuyer(buyer),
		orderCommand.setQuantity(quantity),
		orderCommand.setPrice(price),
		orderCommand.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CropID returns the identifier of the crop being purchased.
func (c PlaceOrderCommand) CropID() kernel.UUID {
	return c.cropID
}

// Buyer returns the purchasing party.
func (c PlaceOrderCommand) Buyer() kernel.Party {
	return c.buyer
}

// Quantity returns the requested quantity.
func (c PlaceOrderCommand) Quantity() float64 {
	return c.quantity
}

// Price returns the offered price.
func (c PlaceOrderCommand) Price() float64 {
	return c.price
}

// DeliveryAddress returns where the crop should be delivered.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Notes returns the buyer's free-text notes.
func (c PlaceOrderCommand) Notes() string {
	return c.notes
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCropID(cropID kernel.UUID) error {
	if err := cropID.Validate(); err != nil {
		return err
	}

	c.cropID = cropID
	return nil
}

func (c *PlaceOrderCommand) setBuyer(buyer kernel.Party) error {
	if err := buyer.Validate(); err != nil {
		return err
	}

	c.buyer = buyer
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *PlaceOrderCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
