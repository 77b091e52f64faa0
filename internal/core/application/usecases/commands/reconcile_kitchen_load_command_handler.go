package commands

import (
	"context"
	"log/slog"
)

// ReconcileKitchenLoadCommandHandler recomputes kitchen load counters.
// The load of a kitchen is the number of orders currently in COOKING
// status within its tenant; counters drift when transitions race with
// reads, so the scheduler periodically rebuilds them from the order store
// inside one transaction.
type ReconcileKitchenLoadCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewReconcileKitchenLoadCommandHandler creates a handler for kitchen load
// reconciliation operations.
func NewReconcileKitchenLoadCommandHandler(
	uowFactory UoWFactory,
	logger *slog.Logger,
) ReconcileKitchenLoadCommandHandler {
	return ReconcileKitchenLoadCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "reconcile_kitchen_load_handler"),
	}
}

// Handle processes the load reconciliation command. Kitchens whose stored
// load already matches are skipped to keep the write set small.
func (h *ReconcileKitchenLoadCommandHandler) Handle(ctx context.Context, cmd ReconcileKitchenLoadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	kitchens, err := uow.KitchenRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	cookingByTenant, err := uow.OrderRepository().CountCookingByTenant(ctx)
	if err != nil {
		return err
	}

	updated := 0
	for _, k := range kitchens {
		load := cookingByTenant[k.TenantID().String()]
		if k.CurrentCooking() == load {
			continue
		}

		if err = k.SetLoad(load); err != nil {
			return err
		}
		if err = uow.KitchenRepository().Update(ctx, k); err != nil {
			return err
		}
		updated++
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "kitchen load reconciled",
		"kitchens", len(kitchens), "updated", updated)

	return nil
}
