package ports

import (
	"context"

	"agritrace/internal/core/domain/model/kernel"
)

// Notification carries a human-readable event addressed to a party.
type Notification struct {
	Recipient kernel.Party
	Subject   string
	Body      string
}

// Notifier delivers notifications to parties about lifecycle events they
// participate in. Delivery is best effort: failures are logged by the
// implementation and never fail the business operation that produced them.
type Notifier interface {
	Notify(ctx context.Context, notification Notification)
}
