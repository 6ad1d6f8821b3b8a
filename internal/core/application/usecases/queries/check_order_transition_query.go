package queries

import (
	"errors"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/order"
	"agritrace/internal/pkg/guard"
)

var ErrCheckOrderTransitionQueryIsNotConstructed = errors.New(
	"CheckOrderTransitionQuery must be created via NewCheckOrderTransitionQuery constructor",
)

// CheckOrderTransitionQuery asks whether an order could move to a target
// status. It is a pure feasibility probe for clients that want to enable or
// disable actions up front; it mutates nothing and grants nothing.
type CheckOrderTransitionQuery struct {
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewCheckOrderTransitionQuery creates an order transition feasibility query.
func NewCheckOrderTransitionQuery(orderID kernel.UUID, target order.Status) (CheckOrderTransitionQuery, error) {
	if err := errors.Join(orderID.Validate(), target.Validate()); err != nil {
		return CheckOrderTransitionQuery{}, err
	}

	return CheckOrderTransitionQuery{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckOrderTransitionQuery) Validate() error {
	return q.guard.Validate(ErrCheckOrderTransitionQueryIsNotConstructed)
}

// OrderID returns the order to probe.
func (q CheckOrderTransitionQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Target returns the status being probed.
func (q CheckOrderTransitionQuery) Target() order.Status {
	return q.target
}

// CheckOrderTransitionResponse reports the feasibility verdict.
type CheckOrderTransitionResponse struct {
	From    string
	To      string
	Allowed bool
}
