package kernel

import (
	"fmt"
	"strings"

	"resto/internal/pkg/errs"

	"github.com/google/uuid"
)

// Identifier prefixes. Every entity identifier has the stable format
// "<PREFIX>-<uuid4>", where the random part comes from a cryptographically
// strong source, so identifiers are globally unique and never reused.
const (
	OrderIDPrefix   = "ORD"
	KitchenIDPrefix = "KITCHEN"
	DishIDPrefix    = "DISH"
)

// NewPrefixedID produces a fresh globally unique identifier with the given
// prefix, e.g. "ORD-550e8400-e29b-41d4-a716-446655440000". The random part
// is a version 4 UUID generated from crypto/rand.
func NewPrefixedID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// parsePrefixedID validates the "<PREFIX>-<uuid>" format.
func parsePrefixedID(paramName, prefix, value string) error {
	rest, ok := strings.CutPrefix(value, prefix+"-")
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%q does not start with %s-", value, prefix))
	}
	if _, err := uuid.Parse(rest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return nil
}

// OrderID is a value object identifying an order. It is unique within a
// tenant and immutable once created; together with TenantID it forms the
// composite key under which the order record is stored.
//
// The zero value is invalid and must be constructed via NewOrderID or
// OrderIDFromString.
//
// Example:
//
//	id := kernel.NewOrderID()
//	fmt.Println(id.String()) // e.g. "ORD-550e8400-e29b-41d4-a716-446655440000"
type OrderID struct {
	value string
}

// NewOrderID generates a new random order identifier.
// This is the primary way to create identifiers for new orders.
func NewOrderID() OrderID {
	return OrderID{value: NewPrefixedID(OrderIDPrefix)}
}

// OrderIDFromString parses an order identifier from its string form.
// Returns an error when the value does not match the "ORD-<uuid>" format.
// Used when reconstructing orders from persistence or parsing request paths.
func OrderIDFromString(value string) (OrderID, error) {
	if err := parsePrefixedID("orderId", OrderIDPrefix, value); err != nil {
		return OrderID{}, err
	}
	return OrderID{value: value}, nil
}

// String returns the identifier in its "ORD-<uuid>" form.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was properly constructed.
func (id OrderID) Validate() error {
	if id.value == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	return nil
}

// KitchenID is a value object identifying a kitchen within a tenant.
// The zero value is invalid and must be constructed via NewKitchenID or
// KitchenIDFromString.
type KitchenID struct {
	value string
}

// NewKitchenID generates a new random kitchen identifier.
func NewKitchenID() KitchenID {
	return KitchenID{value: NewPrefixedID(KitchenIDPrefix)}
}

// KitchenIDFromString parses a kitchen identifier from its string form.
func KitchenIDFromString(value string) (KitchenID, error) {
	if err := parsePrefixedID("kitchenId", KitchenIDPrefix, value); err != nil {
		return KitchenID{}, err
	}
	return KitchenID{value: value}, nil
}

// String returns the identifier in its "KITCHEN-<uuid>" form.
func (id KitchenID) String() string {
	return id.value
}

// IsEqual compares two kitchen identifiers for equality.
func (id KitchenID) IsEqual(other KitchenID) bool {
	return id.value == other.value
}

// Validate checks that the KitchenID was properly constructed.
func (id KitchenID) Validate() error {
	if id.value == "" {
		return errs.NewValueIsRequiredError("kitchenId")
	}
	return nil
}

// DishID is a value object identifying a dish on a tenant's menu.
// The zero value is invalid and must be constructed via NewDishID or
// DishIDFromString.
type DishID struct {
	value string
}

// NewDishID generates a new random dish identifier.
func NewDishID() DishID {
	return DishID{value: NewPrefixedID(DishIDPrefix)}
}

// DishIDFromString parses a dish identifier from its string form.
func DishIDFromString(value string) (DishID, error) {
	if err := parsePrefixedID("dishId", DishIDPrefix, value); err != nil {
		return DishID{}, err
	}
	return DishID{value: value}, nil
}

// String returns the identifier in its "DISH-<uuid>" form.
func (id DishID) String() string {
	return id.value
}

// IsEqual compares two dish identifiers for equality.
func (id DishID) IsEqual(other DishID) bool {
	return id.value == other.value
}

// Validate checks that the DishID was properly constructed.
func (id DishID) Validate() error {
	if id.value == "" {
		return errs.NewValueIsRequiredError("dishId")
	}
	return nil
}
