package queries

import (
	"errors"

	"resto/internal/core/domain/model/actor"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves a page of the actor's visible orders.
// The limit is clamped by the handler; the cursor token is opaque to the
// caller and must come from a previous page of the same listing.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	actor  actor.Actor
	limit  int
	cursor string
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders.
// A nil status lists every visible order; a present status narrows the
// page to orders currently in it.
func NewListOrdersQuery(a actor.Actor, limit int, cursor string, status *order.Status) (ListOrdersQuery, error) {
	listQuery := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		listQuery.setActor(a),
		listQuery.setStatus(status),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	listQuery.limit = kernel.NormalizeLimit(limit)
	listQuery.cursor = cursor

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the requesting actor.
func (q ListOrdersQuery) Actor() actor.Actor {
	return q.actor
}

// Limit returns the normalized page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Cursor returns the opaque continuation token, empty for the first page.
func (q ListOrdersQuery) Cursor() string {
	return q.cursor
}

// Status returns the optional status filter.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

func (q *ListOrdersQuery) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	q.actor = a
	return nil
}

func (q *ListOrdersQuery) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}
