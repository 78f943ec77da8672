// Package notification provides the outbound message value object emitted by
// workflow operations. Handlers collect notifications alongside their result
// and the caller dispatches them after the transaction commits, so workflow
// success never depends on notification delivery.
package notification
