package ports

import (
	"context"

	"rental/internal/core/domain/model/client"
	"rental/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client aggregates.
type ClientRepository interface {
	// Add persists a new client aggregate to storage.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client aggregate,
	// including its soft-delete marker.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client aggregate by its unique identifier.
	// Soft-deleted clients are returned with their deletion marker set.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)
}
