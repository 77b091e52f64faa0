package commands

import (
	"errors"
	"fmt"

	"resto/internal/core/domain/model/actor"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"
	"resto/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the requesting actor, the line items and the caller-supplied
// total. The dish catalog is external, so item references and the total are
// trusted as-is; only their shape is validated.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(requester, []order.Item{{DishRef: "D1", Quantity: 2}}, 25.00)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor actor.Actor
	items []order.Item
	total float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the actor, every present item and that the total is not
// negative. An empty item list is allowed.
func NewCreateOrderCommand(a actor.Actor, items []order.Item, total float64) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setActor(a),
		orderCommand.setItems(items),
		orderCommand.setTotal(total),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the requesting actor.
func (c CreateOrderCommand) Actor() actor.Actor {
	return c.actor
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Total returns the caller-supplied monetary total.
func (c CreateOrderCommand) Total() float64 {
	return c.total
}

func (c *CreateOrderCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%v is negative", total))
	}

	c.total = total
	return nil
}
