// Package kitchenrepo provides data transfer objects and mapping functions for kitchen persistence.
package kitchenrepo

import (
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/kitchen"
)

// KitchenDTO represents the database structure for persisting kitchen aggregates.
// The primary key is composite (tenant_id, id), matching the order table.
type KitchenDTO struct {
	TenantID       string `gorm:"primaryKey;size:128"`
	ID             string `gorm:"primaryKey;size:64"`
	Name           string `gorm:"size:256"`
	MaxCooking     int
	CurrentCooking int
	Active         bool `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for kitchen entities.
func (KitchenDTO) TableName() string {
	return "kitchens"
}

func fromDomain(aggregate *kitchen.Kitchen) KitchenDTO {
	return KitchenDTO{
		TenantID:       aggregate.TenantID().String(),
		ID:             aggregate.ID().String(),
		Name:           aggregate.Name(),
		MaxCooking:     aggregate.MaxCooking(),
		CurrentCooking: aggregate.CurrentCooking(),
		Active:         aggregate.Active(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

func toDomain(dto KitchenDTO) (*kitchen.Kitchen, error) {
	id, err := kernel.KitchenIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.NewTenantID(dto.TenantID)
	if err != nil {
		return nil, err
	}

	return kitchen.RestoreKitchen(
		id,
		tenantID,
		dto.Name,
		dto.MaxCooking,
		dto.CurrentCooking,
		dto.Active,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
