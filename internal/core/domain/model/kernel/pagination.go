package kernel

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"resto/internal/pkg/errs"
)

// Page size bounds for all listing operations. An explicitly requested
// limit is clamped into [MinPageLimit, MaxPageLimit], never rejected;
// DefaultPageLimit applies only when no limit was supplied, which callers
// signal as zero.
const (
	DefaultPageLimit = 20
	MinPageLimit     = 1
	MaxPageLimit     = 100
)

// NormalizeLimit applies the page size contract to a caller-supplied limit.
func NormalizeLimit(limit int) int {
	if limit == 0 {
		return DefaultPageLimit
	}
	if limit < MinPageLimit {
		return MinPageLimit
	}
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}

// PageCursor is the continuation token for resuming a tenant-scoped keyset
// scan. It carries the tenant partition, the last key returned and the
// filter context the scan was started with, which is the minimal state
// needed to produce the next page deterministically.
//
// Cursors are transient and caller-held: they are never persisted, and the
// encoded form is opaque to callers, who must pass it back unmodified.
//
// Example:
//
//	cursor := kernel.NewPageCursor(tenant, lastID, "CREATED")
//	token := cursor.Encode()
//	// ... next request ...
//	cursor, err := kernel.DecodePageCursor(token)
//	if err != nil {
//	    // malformed token, always a client error
//	}
type PageCursor struct {
	tenant  string
	lastKey string
	filter  string
}

// pageCursorDTO is the wire form of a cursor before base64 encoding.
type pageCursorDTO struct {
	Tenant  string `json:"t"`
	LastKey string `json:"k"`
	Filter  string `json:"f,omitempty"`
}

// NewPageCursor creates a cursor pointing just past lastKey within the
// given tenant partition. The filter context is carried verbatim so a
// resumed scan keeps the original predicate.
func NewPageCursor(tenant TenantID, lastKey string, filter string) PageCursor {
	return PageCursor{
		tenant:  tenant.String(),
		lastKey: lastKey,
		filter:  filter,
	}
}

// DecodePageCursor deserializes an opaque continuation token.
// It rejects every string it did not itself produce via Encode that is not
// validly formed, returning a ValueIsInvalidError so transports classify it
// as a client error rather than a server failure.
func DecodePageCursor(token string) (PageCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return PageCursor{}, errs.NewValueIsInvalidErrorWithCause("cursor", err)
	}

	var dto pageCursorDTO
	if err = json.Unmarshal(raw, &dto); err != nil {
		return PageCursor{}, errs.NewValueIsInvalidErrorWithCause("cursor", err)
	}

	if dto.Tenant == "" || dto.LastKey == "" {
		return PageCursor{}, errs.NewValueIsInvalidErrorWithCause("cursor",
			fmt.Errorf("cursor is missing tenant or last key"))
	}

	return PageCursor{tenant: dto.Tenant, lastKey: dto.LastKey, filter: dto.Filter}, nil
}

// Encode serializes the cursor to an opaque string safe for transport in a
// URL query parameter. Encode and DecodePageCursor are inverse operations
// for every valid cursor.
func (c PageCursor) Encode() string {
	raw, err := json.Marshal(pageCursorDTO{Tenant: c.tenant, LastKey: c.lastKey, Filter: c.filter})
	if err != nil {
		// A struct of three strings cannot fail to marshal.
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Tenant returns the tenant partition the cursor belongs to.
func (c PageCursor) Tenant() string {
	return c.tenant
}

// LastKey returns the last key the previous page ended with.
func (c PageCursor) LastKey() string {
	return c.lastKey
}

// Filter returns the filter context the scan was started with.
func (c PageCursor) Filter() string {
	return c.filter
}

// BelongsTo reports whether the cursor was issued for the given tenant.
// A cursor presented against a different tenant partition is invalid.
func (c PageCursor) BelongsTo(tenant TenantID) bool {
	return c.tenant == tenant.String()
}
