package order

import (
	"errors"
	"fmt"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Item is a single line of an order: a reference into the tenant's dish
// catalog and a quantity. The core does not validate the reference against
// the catalog; dishes live behind an external collaborator.
type Item struct {
	DishRef  string
	Quantity int
}

// Validate checks that the line item carries a reference and a positive quantity.
func (i Item) Validate() error {
	if i.DishRef == "" {
		return errs.NewValueIsRequiredError("item dish reference")
	}
	if i.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than 0", i.Quantity))
	}
	return nil
}

// Order represents a restaurant order. It is the aggregate root that manages
// the order lifecycle from creation through cooking and delivery, or
// cancellation.
//
// Order follows these invariants:
//   - tenantID and createdBy never change after creation
//   - items and total are immutable after creation
//   - status transitions follow the state machine defined by Status
//   - updatedAt is monotonically non-decreasing
//   - can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. Orders are never physically
// deleted: cancellation is a terminal state, not a deletion.
type Order struct {
	// id is unique within the tenant and immutable once created
	id kernel.OrderID

	// tenantID scopes every lookup and write for this order
	tenantID kernel.TenantID

	// status is the current state in the order lifecycle
	status Status

	// items are the ordered line items, fixed at creation
	items []Item

	// total is the monetary total, set at creation
	total float64

	// createdBy is the identity of the actor who placed the order
	createdBy string

	// preparedBy is the identity that moved the order into cooking/sended
	preparedBy *string

	// deliveredBy is the identity that completed the delivery
	deliveredBy *string

	createdAt   time.Time
	updatedAt   time.Time
	deliveredAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Created status with validation. This is
// the only way to create a fresh order, ensuring all business invariants
// are maintained.
//
// Parameters:
//   - id: unique identifier for the order
//   - tenantID: tenant the order belongs to
//   - createdBy: identity of the actor placing the order (required)
//   - items: line items; an empty sequence is allowed, but every present
//     item must be valid
//   - total: monetary total, must not be negative; trusted from the caller
//     since the dish catalog is external
//
// Returns the created order, or a validation error if any parameter is
// invalid. Both timestamps are set to the current UTC time.
func NewOrder(
	id kernel.OrderID,
	tenantID kernel.TenantID,
	createdBy string,
	items []Item,
	total float64,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		validateCreatedBy(createdBy),
		validateItems(items),
		validateTotal(total),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Order{
		id:            id,
		tenantID:      tenantID,
		status:        Created,
		items:         copyItems(items),
		total:         total,
		createdBy:     createdBy,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without resetting
// timestamps or status. The stored state is validated the same way the
// constructor validates fresh input, so corrupt records are rejected at
// the storage boundary.
func RestoreOrder(
	id kernel.OrderID,
	tenantID kernel.TenantID,
	status Status,
	items []Item,
	total float64,
	createdBy string,
	preparedBy *string,
	deliveredBy *string,
	createdAt time.Time,
	updatedAt time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		status.Validate(),
		validateCreatedBy(createdBy),
		validateItems(items),
		validateTotal(total),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		tenantID:      tenantID,
		status:        status,
		items:         copyItems(items),
		total:         total,
		createdBy:     createdBy,
		preparedBy:    preparedBy,
		deliveredBy:   deliveredBy,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by tenant and unique identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.tenantID.IsEqual(other.tenantID) && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// TenantID returns the tenant the order belongs to.
func (o *Order) TenantID() kernel.TenantID {
	return o.tenantID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return copyItems(o.items)
}

// Total returns the monetary total set at creation.
func (o *Order) Total() float64 {
	return o.total
}

// CreatedBy returns the identity of the actor who placed the order.
func (o *Order) CreatedBy() string {
	return o.createdBy
}

// PreparedBy returns the identity that moved the order through the kitchen.
// Returns nil while the order has not entered cooking.
func (o *Order) PreparedBy() *string {
	return o.preparedBy
}

// DeliveredBy returns the identity that completed the delivery.
// Returns nil while the order is undelivered.
func (o *Order) DeliveredBy() *string {
	return o.deliveredBy
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last successful transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// DeliveredAt returns the delivery timestamp, nil while undelivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// ChangeStatus transitions the order to the desired status and stamps the
// transition-specific audit fields.
//
// This method enforces the following business rules:
//   - the desired status must be a known status
//   - the current status must satisfy the precondition for the desired one
//   - updatedAt is moved forward on every successful transition
//   - preparedBy is stamped on COOKING and SENDED, deliveredBy and
//     deliveredAt on DELIVERED
//
// Authorization is not checked here: callers consult the access policy
// before mutating the aggregate, and persistence applies the transition
// with a conditional write on the prior status.
//
// Returns:
//   - nil on success
//   - ValueIsInvalidError if desired is not a known status
//   - ErrTransitionNotAllowed if the precondition does not hold
func (o *Order) ChangeStatus(desired Status, by string) error {
	next, err := o.status.TransitionTo(desired)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = next
	o.updatedAt = now

	switch next {
	case Cooking, Sended:
		o.preparedBy = &by
	case Delivered:
		o.deliveredBy = &by
		o.deliveredAt = &now
	case Cancelled, Created, Unknown:
		// no audit field for these transitions
	}

	return nil
}

func validateCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}
	return nil
}

func validateItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func validateTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%v is negative", total))
	}
	return nil
}

func copyItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	copied := make([]Item, len(items))
	copy(copied, items)
	return copied
}
