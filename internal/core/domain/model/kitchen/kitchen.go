// Package kitchen contains the Kitchen aggregate: a tenant's cooking
// capacity record. Kitchens track how many orders they can prepare in
// parallel and how many are currently in COOKING; the load figure is
// recomputed periodically from the order store rather than counted
// incrementally.
package kitchen

import (
	"errors"
	"fmt"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
)

// DefaultMaxCooking is used when a kitchen is created without an explicit
// capacity.
const DefaultMaxCooking = 5

// ErrKitchenIsNotConstructed is returned when a Kitchen instance was not
// created through NewKitchen or RestoreKitchen.
var ErrKitchenIsNotConstructed = errors.New("Kitchen must be created via NewKitchen or RestoreKitchen constructor")

// Kitchen is a cooking capacity record scoped to a tenant.
type Kitchen struct {
	id             kernel.KitchenID
	tenantID       kernel.TenantID
	name           string
	maxCooking     int
	currentCooking int
	active         bool

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewKitchen creates an active kitchen with zero current load.
// A non-positive maxCooking falls back to DefaultMaxCooking.
func NewKitchen(id kernel.KitchenID, tenantID kernel.TenantID, name string, maxCooking int) (*Kitchen, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("kitchen name")
	}
	if maxCooking <= 0 {
		maxCooking = DefaultMaxCooking
	}

	now := time.Now().UTC()
	return &Kitchen{
		id:            id,
		tenantID:      tenantID,
		name:          name,
		maxCooking:    maxCooking,
		active:        true,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreKitchen reconstructs a kitchen from persistence.
func RestoreKitchen(
	id kernel.KitchenID,
	tenantID kernel.TenantID,
	name string,
	maxCooking int,
	currentCooking int,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Kitchen, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("kitchen name")
	}
	if maxCooking <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("maxCooking",
			fmt.Errorf("%d is not greater than 0", maxCooking))
	}
	if currentCooking < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("currentCooking",
			fmt.Errorf("%d is negative", currentCooking))
	}

	return &Kitchen{
		id:             id,
		tenantID:       tenantID,
		name:           name,
		maxCooking:     maxCooking,
		currentCooking: currentCooking,
		active:         active,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Kitchen was constructed via a factory.
func (k *Kitchen) Validate() error {
	if k == nil || !k.isConstructed {
		return ErrKitchenIsNotConstructed
	}
	return nil
}

// ID returns the kitchen's unique identifier.
func (k *Kitchen) ID() kernel.KitchenID {
	return k.id
}

// TenantID returns the tenant the kitchen belongs to.
func (k *Kitchen) TenantID() kernel.TenantID {
	return k.tenantID
}

// Name returns the kitchen's display name.
func (k *Kitchen) Name() string {
	return k.name
}

// MaxCooking returns the maximum number of orders the kitchen prepares in parallel.
func (k *Kitchen) MaxCooking() int {
	return k.maxCooking
}

// CurrentCooking returns the number of orders currently in COOKING.
func (k *Kitchen) CurrentCooking() int {
	return k.currentCooking
}

// Active reports whether the kitchen accepts new work.
func (k *Kitchen) Active() bool {
	return k.active
}

// CreatedAt returns the creation timestamp.
func (k *Kitchen) CreatedAt() time.Time {
	return k.createdAt
}

// UpdatedAt returns the timestamp of the last change.
func (k *Kitchen) UpdatedAt() time.Time {
	return k.updatedAt
}

// SetLoad replaces the current cooking count with a freshly derived figure.
// Used by the load reconciliation job; the count must not be negative.
func (k *Kitchen) SetLoad(currentCooking int) error {
	if currentCooking < 0 {
		return errs.NewValueIsInvalidErrorWithCause("currentCooking",
			fmt.Errorf("%d is negative", currentCooking))
	}

	k.currentCooking = currentCooking
	k.updatedAt = time.Now().UTC()
	return nil
}

// Deactivate marks the kitchen as not accepting new work.
func (k *Kitchen) Deactivate() {
	k.active = false
	k.updatedAt = time.Now().UTC()
}

// Activate marks the kitchen as accepting work again.
func (k *Kitchen) Activate() {
	k.active = true
	k.updatedAt = time.Now().UTC()
}
