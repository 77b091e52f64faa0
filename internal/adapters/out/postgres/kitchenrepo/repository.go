package kitchenrepo

import (
	"context"
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/kitchen"
	"resto/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormKitchenRepository implements KitchenRepository using GORM.
type GormKitchenRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormKitchenRepository creates a new GORM kitchen repository.
func NewGormKitchenRepository(db *gorm.DB, tracker aggregateTracker) *GormKitchenRepository {
	return &GormKitchenRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new kitchen to the database with a put-if-absent guard on
// the composite key.
func (r *GormKitchenRepository) Add(ctx context.Context, aggregate *kitchen.Kitchen) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("kitchen", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing kitchen to the database.
func (r *GormKitchenRepository) Update(ctx context.Context, aggregate *kitchen.Kitchen) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&KitchenDTO{}).
		Where("tenant_id = ? AND id = ?", dto.TenantID, dto.ID).
		Updates(map[string]any{
			"name":            dto.Name,
			"max_cooking":     dto.MaxCooking,
			"current_cooking": dto.CurrentCooking,
			"active":          dto.Active,
			"updated_at":      dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("kitchen", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a kitchen by its composite key.
func (r *GormKitchenRepository) Get(ctx context.Context, tenantID kernel.TenantID, id kernel.KitchenID) (*kitchen.Kitchen, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto KitchenDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND id = ?", tenantID.String(), id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("kitchen", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every active kitchen across all tenants.
func (r *GormKitchenRepository) GetAllActive(ctx context.Context) ([]*kitchen.Kitchen, error) {
	var dtos []KitchenDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "active = ?", true).Error; err != nil {
		return nil, err
	}

	kitchens := make([]*kitchen.Kitchen, 0, len(dtos))
	for _, dto := range dtos {
		k, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		kitchens = append(kitchens, k)
	}

	return kitchens, nil
}
