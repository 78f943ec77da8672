// Package notify contains outbound notification delivery adapters.
package notify

import (
	"context"
	"log/slog"

	"supplyline/internal/core/domain/model/notification"
)

// LogNotificationPublisher emits notifications as structured log records.
// It stands in for push/SMS gateways; the workflow only depends on the
// NotificationPublisher port, so swapping in a real gateway is a wiring
// change.
type LogNotificationPublisher struct {
	logger *slog.Logger
}

// NewLogNotificationPublisher creates a publisher writing to the given logger.
func NewLogNotificationPublisher(logger *slog.Logger) *LogNotificationPublisher {
	return &LogNotificationPublisher{
		logger: logger.With("component", "notification_publisher"),
	}
}

// Publish emits one notification.
func (p *LogNotificationPublisher) Publish(ctx context.Context, n notification.Notification) error {
	attrs := []any{
		"recipient_id", n.RecipientID().String(),
		"type", string(n.Type()),
		"priority", string(n.Priority()),
		"title", n.Title(),
		"message", n.Message(),
	}
	if id := n.OrderID(); id != nil {
		attrs = append(attrs, "order_id", id.String())
	}
	if id := n.DeliveryID(); id != nil {
		attrs = append(attrs, "delivery_id", id.String())
	}

	p.logger.InfoContext(ctx, "notification dispatched", attrs...)
	return nil
}
