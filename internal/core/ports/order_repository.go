// Package ports defines repository interfaces for the distribution domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Listing read models do not go through it; they are served by the raw-SQL
// query handlers in the application layer.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write is conditional on the version the aggregate was loaded
	// with: if another transaction committed a transition in the
	// meantime, Update returns errs.ErrConcurrentModification and the
	// caller must reload and retry.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items and current status.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
