package ports

import (
	"context"

	"supplyline/internal/core/domain/model/notification"
)

// NotificationPublisher dispatches outbound notifications. Callers invoke it
// after their transaction commits and must treat failures as log-and-continue:
// a lost notification never fails the operation that produced it.
type NotificationPublisher interface {
	Publish(ctx context.Context, n notification.Notification) error
}
