// Package ports defines repository interfaces for the procurement domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders by branch
// and workflow status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetAllInStatuses retrieves all orders whose status is one of the given
	// set, newest first. Used for role work queues and the delivery stamp job.
	GetAllInStatuses(ctx context.Context, statuses []order.Status) ([]*order.Order, error)

	// GetByBranchInStatuses retrieves the branch's orders whose status is one
	// of the given set, newest first. With the non-terminal status set this
	// finds the branch's single in-flight order.
	GetByBranchInStatuses(ctx context.Context, branch kernel.Branch, statuses []order.Status) ([]*order.Order, error)

	// GetLatestCompletedByBranch retrieves the branch's most recently created
	// completed order. Used to carry last known prices into a new order.
	// Returns errs.ErrObjectNotFound when the branch has no completed orders.
	GetLatestCompletedByBranch(ctx context.Context, branch kernel.Branch) (*order.Order, error)
}
