package orderrepo

import (
	"context"
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
// Requires the connection to be opened with TranslateError so unique
// violations surface as gorm.ErrDuplicatedKey.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database. The composite primary key makes
// the insert the put-if-absent guard: a second insert with the same
// (tenant, id) violates the key and maps to ObjectAlreadyExistsError.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves an order by its composite key.
func (r *GormOrderRepository) Get(ctx context.Context, tenantID kernel.TenantID, id kernel.OrderID) (*order.Order, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND id = ?", tenantID.String(), id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists a status change with a conditional write. The UPDATE
// carries the expected prior status in its WHERE clause, so the existence
// check and the write are one atomic statement. Zero affected rows means
// the precondition no longer holds; a re-read classifies whether the
// record vanished or a concurrent transition won.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("tenant_id = ? AND id = ? AND status = ?", dto.TenantID, dto.ID, int(expected)).
		Updates(map[string]any{
			"status":       dto.Status,
			"prepared_by":  dto.PreparedBy,
			"delivered_by": dto.DeliveredBy,
			"updated_at":   dto.UpdatedAt,
			"delivered_at": dto.DeliveredAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyConditionFailure(ctx, aggregate, expected)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// CountCookingByTenant returns the number of orders in COOKING status per
// tenant. Tenants without cooking orders are absent from the map.
func (r *GormOrderRepository) CountCookingByTenant(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("tenant_id, COUNT(*) AS cooking").
		Where("status = ?", int(order.Cooking)).
		Group("tenant_id").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var tenant string
		var cooking int
		if err = rows.Scan(&tenant, &cooking); err != nil {
			return nil, err
		}
		counts[tenant] = cooking
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *GormOrderRepository) classifyConditionFailure(
	ctx context.Context,
	aggregate *order.Order,
	expected order.Status,
) error {
	var stored OrderDTO
	err := r.db.WithContext(ctx).
		First(&stored, "tenant_id = ? AND id = ?", aggregate.TenantID().String(), aggregate.ID().String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return err
	}

	return errs.NewPreconditionFailedErrorWithCause("order status",
		errors.New("expected "+expected.String()+", stored "+order.Status(stored.Status).String()))
}
