package notification

import (
	"fmt"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
)

// Priority orders notifications for the recipient.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Validate checks that the priority belongs to the known vocabulary.
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("priority",
		fmt.Errorf("%q is not a valid priority", string(p)))
}

// Type classifies what a notification is about.
type Type string

const (
	TypeOrderCreated      Type = "order_created"
	TypeOrderStatusChange Type = "order_status_change"
	TypeWorkerAssigned    Type = "worker_assigned"
	TypeDeliveryCompleted Type = "delivery_completed"
	TypeDeliveryIssue     Type = "delivery_issue"
	TypeOrderOverdue      Type = "order_overdue"
)

// Notification is an outbound message produced by a workflow operation and
// dispatched after the operation's transaction commits. Delivery is
// fire-and-forget: a failed dispatch never affects the operation that
// produced it.
type Notification struct {
	recipientID kernel.UUID
	ntype       Type
	title       string
	message     string
	priority    Priority
	orderID     *kernel.UUID
	deliveryID  *kernel.UUID
}

// New creates a validated notification. Related order and delivery IDs are
// optional.
func New(
	recipientID kernel.UUID,
	ntype Type,
	title, message string,
	priority Priority,
	orderID, deliveryID *kernel.UUID,
) (Notification, error) {
	if err := recipientID.Validate(); err != nil {
		return Notification{}, err
	}
	if title == "" {
		return Notification{}, errs.NewValueIsRequiredError("title")
	}
	if message == "" {
		return Notification{}, errs.NewValueIsRequiredError("message")
	}
	if err := priority.Validate(); err != nil {
		return Notification{}, err
	}

	return Notification{
		recipientID: recipientID,
		ntype:       ntype,
		title:       title,
		message:     message,
		priority:    priority,
		orderID:     orderID,
		deliveryID:  deliveryID,
	}, nil
}

func (n Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

func (n Notification) Type() Type {
	return n.ntype
}

func (n Notification) Title() string {
	return n.title
}

func (n Notification) Message() string {
	return n.message
}

func (n Notification) Priority() Priority {
	return n.priority
}

// OrderID returns the related order, or nil.
func (n Notification) OrderID() *kernel.UUID {
	return n.orderID
}

// DeliveryID returns the related delivery, or nil.
func (n Notification) DeliveryID() *kernel.UUID {
	return n.deliveryID
}
