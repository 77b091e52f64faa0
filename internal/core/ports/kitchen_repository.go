package ports

import (
	"context"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/kitchen"
)

// KitchenRepository defines the persistence contract for kitchen aggregates.
type KitchenRepository interface {
	// Add persists a new kitchen with a put-if-absent guard.
	// Returns an ObjectAlreadyExistsError on an identifier collision.
	Add(ctx context.Context, aggregate *kitchen.Kitchen) error

	// Update persists changes to an existing kitchen.
	// Returns an ObjectNotFoundError when the kitchen does not exist.
	Update(ctx context.Context, aggregate *kitchen.Kitchen) error

	// Get retrieves a kitchen by its composite key.
	Get(ctx context.Context, tenantID kernel.TenantID, id kernel.KitchenID) (*kitchen.Kitchen, error)

	// GetAllActive retrieves every active kitchen across all tenants.
	// Used by the load reconciliation job.
	GetAllActive(ctx context.Context) ([]*kitchen.Kitchen, error)
}
