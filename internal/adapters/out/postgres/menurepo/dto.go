// Package menurepo provides data transfer objects and mapping functions for menu persistence.
package menurepo

import (
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/menu"
)

// DishDTO represents the database structure for persisting menu dishes.
// The primary key is composite (tenant_id, id), matching the order table.
type DishDTO struct {
	TenantID    string `gorm:"primaryKey;size:128"`
	ID          string `gorm:"primaryKey;size:64"`
	Name        string `gorm:"size:256"`
	Description string
	Price       float64
	Available   bool
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for dish entities.
func (DishDTO) TableName() string {
	return "dishes"
}

func fromDomain(aggregate *menu.Dish) DishDTO {
	return DishDTO{
		TenantID:    aggregate.TenantID().String(),
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		Available:   aggregate.Available(),
		ImageURL:    aggregate.ImageURL(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func toDomain(dto DishDTO) (*menu.Dish, error) {
	id, err := kernel.DishIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.NewTenantID(dto.TenantID)
	if err != nil {
		return nil, err
	}

	return menu.RestoreDish(
		id,
		tenantID,
		dto.Name,
		dto.Description,
		dto.Price,
		dto.Available,
		dto.ImageURL,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
