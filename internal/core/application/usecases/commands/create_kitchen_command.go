package commands

import (
	"errors"

	"resto/internal/core/domain/model/actor"
	"resto/internal/pkg/guard"
)

var (
	ErrCreateKitchenCommandIsNotConstructed = errors.New(
		"CreateKitchenCommand must be created via NewCreateKitchenCommand constructor",
	)
)

// CreateKitchenCommand represents a request to register a kitchen for the
// actor's tenant. Capacity defaults are resolved by the aggregate, so a
// zero maxCooking is accepted here.
type CreateKitchenCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	name       string
	maxCooking int

	guard guard.ConstructorGuard
}

// NewCreateKitchenCommand creates a command to register a kitchen.
func NewCreateKitchenCommand(a actor.Actor, name string, maxCooking int) (CreateKitchenCommand, error) {
	kitchenCommand := CreateKitchenCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := kitchenCommand.setActor(a); err != nil {
		return CreateKitchenCommand{}, err
	}

	kitchenCommand.name = name
	kitchenCommand.maxCooking = maxCooking

	return kitchenCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateKitchenCommandIsNotConstructed if validation fails.
func (c CreateKitchenCommand) Validate() error {
	return c.guard.Validate(ErrCreateKitchenCommandIsNotConstructed)
}

// Actor returns the requesting actor.
func (c CreateKitchenCommand) Actor() actor.Actor {
	return c.actor
}

// Name returns the requested kitchen name.
func (c CreateKitchenCommand) Name() string {
	return c.name
}

// MaxCooking returns the requested parallel-cooking capacity.
// Zero means the aggregate default.
func (c CreateKitchenCommand) MaxCooking() int {
	return c.maxCooking
}

func (c *CreateKitchenCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}
