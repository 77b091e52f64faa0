// Package ports defines repository and publisher interfaces for the order
// tracking domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates
// over a tenant-partitioned keyed store. The composite key is
// (tenant, order id); every method is scoped to exactly one tenant.
type OrderRepository interface {
	// Add persists a new order aggregate with a put-if-absent guard.
	// Returns an ObjectAlreadyExistsError when an order with the same
	// identifier already exists in the tenant.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its composite key.
	// Returns an ObjectNotFoundError when no such order exists in the
	// tenant; an order from another tenant is never visible.
	Get(ctx context.Context, tenantID kernel.TenantID, id kernel.OrderID) (*order.Order, error)

	// Update persists a status change with a conditional write: the stored
	// record must still be in expected status at apply time. The check and
	// the write happen as a single atomic store operation, which is the
	// mutual exclusion boundary for concurrent transitions.
	//
	// Returns:
	//   - ObjectNotFoundError when the record no longer exists
	//   - PreconditionFailedError when the stored status differs from
	//     expected (a concurrent transition won); the failure is derived by
	//     re-reading, never by blind retry
	Update(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// CountCookingByTenant returns, per tenant, the number of orders
	// currently in COOKING. Used by the kitchen load reconciliation job.
	CountCookingByTenant(ctx context.Context) (map[string]int, error)
}
