// Package ports defines repository and collaborator interfaces for the rental domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
)

// RentalOrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying rental orders
// across their lifecycle.
type RentalOrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *rental.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *rental.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rental.Order, error)

	// GetOpenByClient retrieves the client's order in Open status, if any.
	// Used by the placement workflow to enforce the one-open-order rule.
	// Returns nil without error when the client has no open order.
	GetOpenByClient(ctx context.Context, clientID kernel.UUID) (*rental.Order, error)

	// GetAllOverdue retrieves Approved orders whose rental window ended before
	// the given moment. Used by the overdue sweep job.
	GetAllOverdue(ctx context.Context, before time.Time) ([]*rental.Order, error)
}
