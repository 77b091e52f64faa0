package queries

import (
	"context"

	"resto/internal/core/domain/model/order"
	"resto/internal/core/domain/services"
	"resto/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
// The aggregate is restored from the row so the access policy can decide
// on real domain state; the response is the flattened read model.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist in the actor's tenant and an AccessForbiddenError when
// the actor may not read it.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE tenant_id = ? AND id = ?
	`, query.Actor().TenantID().String(), query.OrderID().String()).Rows()
	if err != nil {
		return OrderQueryResponse{}, err
	}
	defer rows.Close()

	var aggregate *order.Order
	if rows.Next() {
		if aggregate, err = scanOrderRow(rows, query.Actor().TenantID()); err != nil {
			return OrderQueryResponse{}, err
		}
	}
	if err = rows.Err(); err != nil {
		return OrderQueryResponse{}, err
	}

	if aggregate == nil {
		return OrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	if !h.policy.CanRead(query.Actor(), aggregate) {
		return OrderQueryResponse{}, errs.NewAccessForbiddenError("read order " + query.OrderID().String())
	}

	return newOrderQueryResponse(aggregate), nil
}
