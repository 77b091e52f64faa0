// Package menu contains the Dish aggregate: a tenant's menu entry.
// Order line items reference dishes by identifier, but the order core never
// validates those references here; the menu is managed independently by
// tenant administrators.
package menu

import (
	"errors"
	"fmt"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
)

// ErrDishIsNotConstructed is returned when a Dish instance was not created
// through NewDish or RestoreDish.
var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish or RestoreDish constructor")

// Dish is a single menu entry scoped to a tenant.
type Dish struct {
	id          kernel.DishID
	tenantID    kernel.TenantID
	name        string
	description string
	price       float64
	available   bool
	imageURL    string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewDish creates an available dish.
func NewDish(
	id kernel.DishID,
	tenantID kernel.TenantID,
	name string,
	description string,
	price float64,
	imageURL string,
) (*Dish, error) {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		validateName(name),
		validatePrice(price),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Dish{
		id:            id,
		tenantID:      tenantID,
		name:          name,
		description:   description,
		price:         price,
		available:     true,
		imageURL:      imageURL,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreDish reconstructs a dish from persistence.
func RestoreDish(
	id kernel.DishID,
	tenantID kernel.TenantID,
	name string,
	description string,
	price float64,
	available bool,
	imageURL string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Dish, error) {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		validateName(name),
		validatePrice(price),
	); err != nil {
		return nil, err
	}

	return &Dish{
		id:            id,
		tenantID:      tenantID,
		name:          name,
		description:   description,
		price:         price,
		available:     available,
		imageURL:      imageURL,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Dish was constructed via a factory.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

// ID returns the dish's unique identifier.
func (d *Dish) ID() kernel.DishID {
	return d.id
}

// TenantID returns the tenant the dish belongs to.
func (d *Dish) TenantID() kernel.TenantID {
	return d.tenantID
}

// Name returns the dish's display name.
func (d *Dish) Name() string {
	return d.name
}

// Description returns the dish's description.
func (d *Dish) Description() string {
	return d.description
}

// Price returns the dish's price.
func (d *Dish) Price() float64 {
	return d.price
}

// Available reports whether the dish is currently orderable.
func (d *Dish) Available() bool {
	return d.available
}

// ImageURL returns the dish's image location, empty when unset.
func (d *Dish) ImageURL() string {
	return d.imageURL
}

// CreatedAt returns the creation timestamp.
func (d *Dish) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the timestamp of the last change.
func (d *Dish) UpdatedAt() time.Time {
	return d.updatedAt
}

// Update replaces the dish's editable attributes.
func (d *Dish) Update(name string, description string, price float64, available bool, imageURL string) error {
	if err := errors.Join(validateName(name), validatePrice(price)); err != nil {
		return err
	}

	d.name = name
	d.description = description
	d.price = price
	d.available = available
	d.imageURL = imageURL
	d.updatedAt = time.Now().UTC()
	return nil
}

func validateName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("dish name")
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price))
	}
	return nil
}
