package commands

import (
	"context"

	"resto/internal/core/domain/services"
	"resto/internal/pkg/errs"
)

// RemoveDishCommandHandler handles the business logic for menu removals.
// Only Owner/Admin actors may edit the menu.
type RemoveDishCommandHandler struct {
	uowFactory MenuUoWFactory
	policy     services.AccessPolicy
}

// NewRemoveDishCommandHandler creates a handler for menu removal operations.
func NewRemoveDishCommandHandler(
	uowFactory MenuUoWFactory,
	policy services.AccessPolicy,
) RemoveDishCommandHandler {
	return RemoveDishCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the dish removal command.
func (h *RemoveDishCommandHandler) Handle(ctx context.Context, cmd RemoveDishCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.policy.CanManageCatalog(cmd.Actor()) {
		return errs.NewAccessForbiddenError("edit menu")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MenuRepository().Remove(ctx, cmd.Actor().TenantID(), cmd.DishID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
