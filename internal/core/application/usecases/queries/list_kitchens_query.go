package queries

import (
	"errors"
	"time"

	"resto/internal/core/domain/model/actor"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

var (
	ErrListKitchensQueryIsNotConstructed = errors.New(
		"ListKitchensQuery must be created via NewListKitchensQuery constructor",
	)
)

// ListKitchensQuery retrieves a page of the tenant's kitchens.
// Every tenant member may list kitchens; management stays with Owner/Admin.
type ListKitchensQuery struct { //nolint:recvcheck //using for validation
	actor  actor.Actor
	limit  int
	cursor string

	guard guard.ConstructorGuard
}

// NewListKitchensQuery creates a query to list the tenant's kitchens.
func NewListKitchensQuery(a actor.Actor, limit int, cursor string) (ListKitchensQuery, error) {
	listQuery := ListKitchensQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := a.Validate(); err != nil {
		return ListKitchensQuery{}, err
	}

	listQuery.actor = a
	listQuery.limit = kernel.NormalizeLimit(limit)
	listQuery.cursor = cursor

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListKitchensQueryIsNotConstructed if validation fails.
func (q ListKitchensQuery) Validate() error {
	return q.guard.Validate(ErrListKitchensQueryIsNotConstructed)
}

// Actor returns the requesting actor.
func (q ListKitchensQuery) Actor() actor.Actor {
	return q.actor
}

// Limit returns the normalized page size.
func (q ListKitchensQuery) Limit() int {
	return q.limit
}

// Cursor returns the opaque continuation token, empty for the first page.
func (q ListKitchensQuery) Cursor() string {
	return q.cursor
}

// KitchenQueryResponse represents kitchen information returned by read
// operations.
type KitchenQueryResponse struct {
	ID             kernel.KitchenID
	Name           string
	MaxCooking     int
	CurrentCooking int
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
