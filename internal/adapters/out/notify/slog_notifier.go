// Package notify provides the outbound notification adapter. The current
// implementation writes notifications to the structured log; a delivery
// channel such as email or push can replace it behind the same port.
package notify

import (
	"context"
	"log/slog"

	"agritrace/internal/core/ports"
)

// SlogNotifier implements ports.Notifier by logging each notification.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier that writes to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// Notify records the notification. Best effort: there is nothing to fail.
func (n *SlogNotifier) Notify(ctx context.Context, notification ports.Notification) {
	n.logger.InfoContext(ctx, "Notification",
		"recipient_id", notification.Recipient.ID().String(),
		"recipient", notification.Recipient.Identity(),
		"subject", notification.Subject,
		"body", notification.Body,
	)
}
