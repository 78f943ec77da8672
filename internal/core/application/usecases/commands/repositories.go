// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation, caller
// authorization, transaction management, and persistence. Handlers return
// the notifications produced by the operation; the caller dispatches them
// after the transaction commits.
package commands

import (
	"context"

	"supplyline/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderNumberFactory provides access to the order number sequence within a transaction.
	OrderNumberFactory interface {
		OrderNumbers() ports.OrderNumberSequence
	}

	// CreateOrderUoW manages the order creation transaction: the new order,
	// the stock decrements, the number allocation, and the directory lookups
	// all share one transaction.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		UserRepoFactory
		OrderNumberFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// WorkflowUoW manages transactions for the status workflow commands,
	// which touch the order, its delivery, and the user directory together.
	WorkflowUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		UserRepoFactory
	}

	// WorkflowUoWFactory creates new workflow unit of work instances.
	WorkflowUoWFactory interface {
		Create() WorkflowUoW
	}
)
