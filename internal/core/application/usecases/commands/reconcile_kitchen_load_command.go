package commands

import (
	"errors"

	"resto/internal/pkg/guard"
)

var (
	ErrReconcileKitchenLoadCommandIsNotConstructed = errors.New(
		"ReconcileKitchenLoadCommand must be created via NewReconcileKitchenLoadCommand constructor",
	)
)

// ReconcileKitchenLoadCommand represents a request to recompute every
// active kitchen's current load from the orders in COOKING status.
// Triggered by the scheduler, so it carries no actor.
type ReconcileKitchenLoadCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileKitchenLoadCommand creates a load reconciliation command.
func NewReconcileKitchenLoadCommand() (ReconcileKitchenLoadCommand, error) {
	return ReconcileKitchenLoadCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReconcileKitchenLoadCommandIsNotConstructed if validation fails.
func (c ReconcileKitchenLoadCommand) Validate() error {
	return c.guard.Validate(ErrReconcileKitchenLoadCommandIsNotConstructed)
}
