package ports

import (
	"context"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for dish aggregates.
type MenuRepository interface {
	// Add persists a new dish with a put-if-absent guard.
	Add(ctx context.Context, aggregate *menu.Dish) error

	// Update persists changes to an existing dish.
	// Returns an ObjectNotFoundError when the dish does not exist.
	Update(ctx context.Context, aggregate *menu.Dish) error

	// Get retrieves a dish by its composite key.
	Get(ctx context.Context, tenantID kernel.TenantID, id kernel.DishID) (*menu.Dish, error)

	// Remove deletes a dish from the tenant's menu.
	// Returns an ObjectNotFoundError when the dish does not exist.
	Remove(ctx context.Context, tenantID kernel.TenantID, id kernel.DishID) error
}
