// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"distribution/internal/core/ports"
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

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ActorDirectoryFactory provides access to the actor directory within a transaction.
	ActorDirectoryFactory interface {
		ActorDirectory() ports.ActorDirectory
	}

	// NotificationOutboxFactory provides access to the notification outbox within a transaction.
	NotificationOutboxFactory interface {
		NotificationOutbox() ports.NotificationOutbox
	}

	// ActorUoW manages transactions for directory-only operations.
	// Used when commands only modify actor accounts.
	ActorUoW interface {
		TxManager
		ActorDirectoryFactory
	}

	// ActorUoWFactory creates new actor unit of work instances.
	ActorUoWFactory interface {
		Create() ActorUoW
	}

	// OrderUoW manages transactions for order placement.
	// Placement verifies the placing restaurant against the directory,
	// so the directory travels in the same transaction as the order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ActorDirectoryFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// NotificationUoW manages transactions for outbox-only operations.
	// Used by the relay, which reads and marks staged notifications.
	NotificationUoW interface {
		TxManager
		NotificationOutboxFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// UoW manages transactions across orders, the directory, and the
	// notification outbox. Used by the transition handler, which reads
	// the directory, mutates the order, and stages a notification in
	// one atomic step.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   directory := uow.ActorDirectory()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ActorDirectoryFactory
		NotificationOutboxFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
