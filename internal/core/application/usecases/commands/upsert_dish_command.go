package commands

import (
	"errors"

	"resto/internal/core/domain/model/actor"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

var (
	ErrUpsertDishCommandIsNotConstructed = errors.New(
		"UpsertDishCommand must be created via NewUpsertDishCommand constructor",
	)
)

// UpsertDishCommand represents a request to add a dish to the tenant's
// menu or replace an existing one. A nil dish identifier means a new dish;
// a present identifier targets an existing dish and fails when it does not
// exist.
type UpsertDishCommand struct { //nolint:recvcheck //using for validation
	actor       actor.Actor
	dishID      *kernel.DishID
	name        string
	description string
	price       float64
	available   bool
	imageURL    string

	guard guard.ConstructorGuard
}

// NewUpsertDishCommand creates a command to add or replace a menu dish.
// Dish field validation happens in the aggregate; only the actor and the
// optional target identifier are checked here.
func NewUpsertDishCommand(
	a actor.Actor,
	dishID *kernel.DishID,
	name string,
	description string,
	price float64,
	available bool,
	imageURL string,
) (UpsertDishCommand, error) {
	dishCommand := UpsertDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dishCommand.setActor(a),
		dishCommand.setDishID(dishID),
	); err != nil {
		return UpsertDishCommand{}, err
	}

	dishCommand.name = name
	dishCommand.description = description
	dishCommand.price = price
	dishCommand.available = available
	dishCommand.imageURL = imageURL

	return dishCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpsertDishCommandIsNotConstructed if validation fails.
func (c UpsertDishCommand) Validate() error {
	return c.guard.Validate(ErrUpsertDishCommandIsNotConstructed)
}

// Actor returns the requesting actor.
func (c UpsertDishCommand) Actor() actor.Actor {
	return c.actor
}

// DishID returns the target dish identifier, or nil for a new dish.
func (c UpsertDishCommand) DishID() *kernel.DishID {
	return c.dishID
}

// Name returns the dish name.
func (c UpsertDishCommand) Name() string {
	return c.name
}

// Description returns the dish description.
func (c UpsertDishCommand) Description() string {
	return c.description
}

// Price returns the dish price.
func (c UpsertDishCommand) Price() float64 {
	return c.price
}

// Available reports whether the dish is orderable.
func (c UpsertDishCommand) Available() bool {
	return c.available
}

// ImageURL returns the dish image reference.
func (c UpsertDishCommand) ImageURL() string {
	return c.imageURL
}

func (c *UpsertDishCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *UpsertDishCommand) setDishID(dishID *kernel.DishID) error {
	if dishID == nil {
		return nil
	}
	if err := dishID.Validate(); err != nil {
		return err
	}

	c.dishID = dishID
	return nil
}
