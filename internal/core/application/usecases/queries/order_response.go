package queries

import (
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
)

// OrderQueryResponse represents order information returned by read
// operations.
type OrderQueryResponse struct {
	ID          kernel.OrderID
	Status      order.Status
	Items       []order.Item
	Total       float64
	CreatedBy   string
	PreparedBy  *string
	DeliveredBy *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeliveredAt *time.Time
}

func newOrderQueryResponse(o *order.Order) OrderQueryResponse {
	return OrderQueryResponse{
		ID:          o.ID(),
		Status:      o.Status(),
		Items:       o.Items(),
		Total:       o.Total(),
		CreatedBy:   o.CreatedBy(),
		PreparedBy:  o.PreparedBy(),
		DeliveredBy: o.DeliveredBy(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
		DeliveredAt: o.DeliveredAt(),
	}
}
