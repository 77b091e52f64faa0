package commands

import (
	"errors"

	"resto/internal/core/domain/model/actor"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// status. Carries the requesting actor so workflow and authorization checks
// can run against the order once it is loaded.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	orderID kernel.OrderID
	desired order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// The desired status must be one of the named statuses; whether the
// transition itself is allowed is decided by the handler against the
// current stored state.
func NewUpdateOrderStatusCommand(
	a actor.Actor,
	orderID kernel.OrderID,
	desired order.Status,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setActor(a),
		statusCommand.setOrderID(orderID),
		statusCommand.setDesired(desired),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// Actor returns the requesting actor.
func (c UpdateOrderStatusCommand) Actor() actor.Actor {
	return c.actor
}

// OrderID returns the identifier of the order to transition.
func (c UpdateOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Desired returns the requested target status.
func (c UpdateOrderStatusCommand) Desired() order.Status {
	return c.desired
}

func (c *UpdateOrderStatusCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setDesired(desired order.Status) error {
	if err := desired.Validate(); err != nil {
		return err
	}

	c.desired = desired
	return nil
}
