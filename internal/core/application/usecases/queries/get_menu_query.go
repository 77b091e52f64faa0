package queries

import (
	"errors"
	"time"

	"resto/internal/core/domain/model/actor"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery retrieves a page of the tenant's menu. Plain customers and
// staff see only available dishes; Owner/Admin see the whole menu so they
// can manage delisted dishes.
type GetMenuQuery struct { //nolint:recvcheck //using for validation
	actor  actor.Actor
	limit  int
	cursor string

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query to list the tenant's menu.
func NewGetMenuQuery(a actor.Actor, limit int, cursor string) (GetMenuQuery, error) {
	menuQuery := GetMenuQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := a.Validate(); err != nil {
		return GetMenuQuery{}, err
	}

	menuQuery.actor = a
	menuQuery.limit = kernel.NormalizeLimit(limit)
	menuQuery.cursor = cursor

	return menuQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuQueryIsNotConstructed if validation fails.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// Actor returns the requesting actor.
func (q GetMenuQuery) Actor() actor.Actor {
	return q.actor
}

// Limit returns the normalized page size.
func (q GetMenuQuery) Limit() int {
	return q.limit
}

// Cursor returns the opaque continuation token, empty for the first page.
func (q GetMenuQuery) Cursor() string {
	return q.cursor
}

// DishQueryResponse represents dish information returned by read
// operations.
type DishQueryResponse struct {
	ID          kernel.DishID
	Name        string
	Description string
	Price       float64
	Available   bool
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
