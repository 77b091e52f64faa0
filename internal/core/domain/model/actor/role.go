package actor

import (
	"fmt"
	"strings"

	"resto/internal/pkg/errs"
)

// Role represents the function an actor performs within a tenant.
// Roles are assigned by the upstream identity provider; the core trusts
// the resolved value and never re-derives it from request payloads.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// User is a regular customer. Users may create orders, cancel their
	// own orders while still in CREATED, and read only orders they created.
	User

	// Owner is the tenant owner with full access to the tenant's data.
	Owner

	// Admin is an administrative role equivalent to Owner for
	// authorization purposes.
	Admin

	// Kitchen is kitchen staff: moves orders into COOKING and SENDED.
	Kitchen

	// Delivery is delivery staff: moves orders into DELIVERED.
	Delivery
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "UNKNOWN",
		User:        "USER",
		Owner:       "OWNER",
		Admin:       "ADMIN",
		Kitchen:     "KITCHEN",
		Delivery:    "DELIVERY",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		User:     "USER",
		Owner:    "OWNER",
		Admin:    "ADMIN",
		Kitchen:  "KITCHEN",
		Delivery: "DELIVERY",
	}
}

// RoleFromString parses a role from its case-insensitive string form.
// Returns an error for values that are not one of the known roles.
func RoleFromString(value string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for role, str := range getValidRoleStrings() {
		if str == normalized {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a known role", value))
}

// String returns the canonical upper-case name of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks if the Role value is valid.
// Valid roles are User, Owner, Admin, Kitchen and Delivery.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsPrivileged reports whether the role has tenant-wide administrative
// access. Owner and Admin are equivalent in every permission check.
func (r Role) IsPrivileged() bool {
	return r == Owner || r == Admin
}
