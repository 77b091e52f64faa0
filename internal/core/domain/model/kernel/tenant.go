package kernel

import (
	"resto/internal/pkg/errs"
)

// ErrTenantIDIsNotConstructed indicates that a TenantID was not created
// through NewTenantID. It is returned when validating a zero-value TenantID.
var ErrTenantIDIsNotConstructed = errs.NewValueIsRequiredError("tenant ID must be created via NewTenantID")

// TenantID is a value object identifying an isolated restaurant account.
// Every record in the system is partitioned by it: all lookups, scans and
// writes are scoped to exactly one tenant, and a TenantID never appears in
// another tenant's data.
//
// TenantID is immutable and safe for concurrent use. The zero value is
// invalid and must be constructed via NewTenantID.
//
// Example:
//
//	tenant, err := kernel.NewTenantID("BEMBOS")
//	if err != nil {
//	    return fmt.Errorf("invalid tenant: %w", err)
//	}
type TenantID struct {
	value string
}

// NewTenantID creates a TenantID from its string form.
// Returns an error when the string is empty.
func NewTenantID(value string) (TenantID, error) {
	if value == "" {
		return TenantID{}, errs.NewValueIsRequiredError("tenantId")
	}
	return TenantID{value: value}, nil
}

// String returns the tenant identifier as supplied by the trust boundary.
func (t TenantID) String() string {
	return t.value
}

// IsEqual compares two tenant identifiers for equality.
func (t TenantID) IsEqual(other TenantID) bool {
	return t.value == other.value
}

// Validate checks that the TenantID was properly constructed.
// Returns ErrTenantIDIsNotConstructed for the zero value.
func (t TenantID) Validate() error {
	if t.value == "" {
		return ErrTenantIDIsNotConstructed
	}
	return nil
}
