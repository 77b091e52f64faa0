package commands

import (
	"errors"

	"resto/internal/core/domain/model/actor"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

var (
	ErrRemoveDishCommandIsNotConstructed = errors.New(
		"RemoveDishCommand must be created via NewRemoveDishCommand constructor",
	)
)

// RemoveDishCommand represents a request to remove a dish from the
// tenant's menu.
type RemoveDishCommand struct { //nolint:recvcheck //using for validation
	actor  actor.Actor
	dishID kernel.DishID

	guard guard.ConstructorGuard
}

// NewRemoveDishCommand creates a command to remove a menu dish.
func NewRemoveDishCommand(a actor.Actor, dishID kernel.DishID) (RemoveDishCommand, error) {
	dishCommand := RemoveDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dishCommand.setActor(a),
		dishCommand.setDishID(dishID),
	); err != nil {
		return RemoveDishCommand{}, err
	}

	return dishCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveDishCommandIsNotConstructed if validation fails.
func (c RemoveDishCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDishCommandIsNotConstructed)
}

// Actor returns the requesting actor.
func (c RemoveDishCommand) Actor() actor.Actor {
	return c.actor
}

// DishID returns the identifier of the dish to remove.
func (c RemoveDishCommand) DishID() kernel.DishID {
	return c.dishID
}

func (c *RemoveDishCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *RemoveDishCommand) setDishID(dishID kernel.DishID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}

	c.dishID = dishID
	return nil
}
