package commands

import (
	"context"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/menu"
	"resto/internal/core/domain/services"
	"resto/internal/pkg/errs"
)

// UpsertDishCommandHandler handles the business logic for menu edits.
// Only Owner/Admin actors may edit the menu.
type UpsertDishCommandHandler struct {
	uowFactory MenuUoWFactory
	policy     services.AccessPolicy
}

// NewUpsertDishCommandHandler creates a handler for menu edit operations.
func NewUpsertDishCommandHandler(
	uowFactory MenuUoWFactory,
	policy services.AccessPolicy,
) UpsertDishCommandHandler {
	return UpsertDishCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the dish upsert command. Without a target identifier a
// new dish is created; with one the existing dish is loaded and updated,
// so the operation fails with an ObjectNotFoundError for a stale target.
func (h *UpsertDishCommandHandler) Handle(ctx context.Context, cmd UpsertDishCommand) (*menu.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !h.policy.CanManageCatalog(cmd.Actor()) {
		return nil, errs.NewAccessForbiddenError("edit menu")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := h.applyDish(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *UpsertDishCommandHandler) applyDish(
	ctx context.Context,
	uow MenuUoW,
	cmd UpsertDishCommand,
) (*menu.Dish, error) {
	if cmd.DishID() == nil {
		aggregate, err := menu.NewDish(
			kernel.NewDishID(),
			cmd.Actor().TenantID(),
			cmd.Name(),
			cmd.Description(),
			cmd.Price(),
			cmd.ImageURL(),
		)
		if err != nil {
			return nil, err
		}
		if !cmd.Available() {
			if err = aggregate.Update(
				cmd.Name(), cmd.Description(), cmd.Price(), cmd.Available(), cmd.ImageURL(),
			); err != nil {
				return nil, err
			}
		}

		return aggregate, uow.MenuRepository().Add(ctx, aggregate)
	}

	aggregate, err := uow.MenuRepository().Get(ctx, cmd.Actor().TenantID(), *cmd.DishID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(
		cmd.Name(), cmd.Description(), cmd.Price(), cmd.Available(), cmd.ImageURL(),
	); err != nil {
		return nil, err
	}

	return aggregate, uow.MenuRepository().Update(ctx, aggregate)
}
