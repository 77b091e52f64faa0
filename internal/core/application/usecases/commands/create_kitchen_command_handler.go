package commands

import (
	"context"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/kitchen"
	"resto/internal/core/domain/services"
	"resto/internal/pkg/errs"
)

// CreateKitchenCommandHandler handles the business logic for kitchen
// registration. Only Owner/Admin actors may register kitchens.
type CreateKitchenCommandHandler struct {
	uowFactory KitchenUoWFactory
	policy     services.AccessPolicy
}

// NewCreateKitchenCommandHandler creates a handler for kitchen
// registration operations.
func NewCreateKitchenCommandHandler(
	uowFactory KitchenUoWFactory,
	policy services.AccessPolicy,
) CreateKitchenCommandHandler {
	return CreateKitchenCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the kitchen registration command.
func (h *CreateKitchenCommandHandler) Handle(ctx context.Context, cmd CreateKitchenCommand) (*kitchen.Kitchen, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !h.policy.CanManageCatalog(cmd.Actor()) {
		return nil, errs.NewAccessForbiddenError("create kitchen")
	}

	aggregate, err := kitchen.NewKitchen(
		kernel.NewKitchenID(),
		cmd.Actor().TenantID(),
		cmd.Name(),
		cmd.MaxCooking(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.KitchenRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
