// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The primary key is composite (tenant_id, id): every access path carries
// the tenant, so one tenant's orders are invisible to another's queries.
type OrderDTO struct {
	TenantID    string `gorm:"primaryKey;size:128"`
	ID          string `gorm:"primaryKey;size:64"`
	Status      int    `gorm:"index"`
	Items       []byte `gorm:"type:jsonb"`
	Total       float64
	CreatedBy   string `gorm:"index;size:128"`
	PreparedBy  *string
	DeliveredBy *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeliveredAt *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// itemDTO is the JSON shape of one line item inside the items column.
type itemDTO struct {
	DishRef  string `json:"dishRef"`
	Quantity int    `json:"quantity"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := aggregate.Items()
	itemDTOs := make([]itemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, itemDTO{DishRef: item.DishRef, Quantity: item.Quantity})
	}

	raw, err := json.Marshal(itemDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		TenantID:    aggregate.TenantID().String(),
		ID:          aggregate.ID().String(),
		Status:      int(aggregate.Status()),
		Items:       raw,
		Total:       aggregate.Total(),
		CreatedBy:   aggregate.CreatedBy(),
		PreparedBy:  aggregate.PreparedBy(),
		DeliveredBy: aggregate.DeliveredBy(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		DeliveredAt: aggregate.DeliveredAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including audit fields using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.NewTenantID(dto.TenantID)
	if err != nil {
		return nil, err
	}

	var itemDTOs []itemDTO
	if len(dto.Items) > 0 {
		if err = json.Unmarshal(dto.Items, &itemDTOs); err != nil {
			return nil, err
		}
	}
	items := make([]order.Item, 0, len(itemDTOs))
	for _, item := range itemDTOs {
		items = append(items, order.Item{DishRef: item.DishRef, Quantity: item.Quantity})
	}

	return order.RestoreOrder(
		id,
		tenantID,
		order.Status(dto.Status),
		items,
		dto.Total,
		dto.CreatedBy,
		dto.PreparedBy,
		dto.DeliveredBy,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
		utcOrNil(dto.DeliveredAt),
	)
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
