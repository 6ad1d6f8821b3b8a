package commands

import (
	"context"

	"agritrace/internal/core/domain/model/dispute"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/order"
)

// disputeAccessibleBy loads the dispute's crop and optional order inside the
// current transaction and evaluates the relational access rule.
// Administrators always have access.
func disputeAccessibleBy(
	ctx context.Context,
	uow DisputeUoW,
	aggregate *dispute.Dispute,
	actor kernel.Party,
) (bool, error) {
	if actor.Role() == kernel.RoleAdmin {
		return true, nil
	}

	cropAggregate, err := uow.CropRepository().Get(ctx, aggregate.CropID())
	if err != nil {
		return false, err
	}

	var orderAggregate *order.Order
	if aggregate.OrderID() != nil {
		orderAggregate, err = uow.OrderRepository().Get(ctx, *aggregate.OrderID())
		if err != nil {
			return false, err
		}
	}

	return aggregate.CanBeAccessedBy(actor, cropAggregate, orderAggregate), nil
}
