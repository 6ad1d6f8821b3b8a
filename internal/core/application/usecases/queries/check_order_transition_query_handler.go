package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"agritrace/internal/core/domain/model/order"
	"agritrace/internal/pkg/errs"
)

// CheckOrderTransitionQueryHandler answers order transition feasibility
// probes against the status transition table.
type CheckOrderTransitionQueryHandler struct {
	db *gorm.DB
}

// NewCheckOrderTransitionQueryHandler creates a handler for feasibility probes.
func NewCheckOrderTransitionQueryHandler(db *gorm.DB) CheckOrderTransitionQueryHandler {
	return CheckOrderTransitionQueryHandler{db: db}
}

// Handle reads the order's current status and evaluates the transition table.
// A disallowed transition is a negative verdict, not an error.
func (h CheckOrderTransitionQueryHandler) Handle(
	ctx context.Context,
	query CheckOrderTransitionQuery,
) (CheckOrderTransitionResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckOrderTransitionResponse{}, err
	}

	var rawStatus string

	row := h.db.WithContext(ctx).Raw(`
		SELECT status FROM orders WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(&rawStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return CheckOrderTransitionResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return CheckOrderTransitionResponse{}, err
	}

	current, err := order.StatusFromString(rawStatus)
	if err != nil {
		return CheckOrderTransitionResponse{}, err
	}

	return CheckOrderTransitionResponse{
		From:    current.String(),
		To:      query.Target().String(),
		Allowed: current.CanTransitionTo(query.Target()),
	}, nil
}
