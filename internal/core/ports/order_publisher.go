package ports

import (
	"context"

	"resto/internal/core/domain/model/order"
)

// OrderPublisher emits a denormalized snapshot of an order for downstream
// consumers on creation and on every successful transition. Publishing is
// best-effort: a failure must never roll back the primary store write, and
// callers surface it as a partial-success warning instead of an error.
type OrderPublisher interface {
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
