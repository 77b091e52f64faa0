package commands

import (
	"context"
	"fmt"
	"log/slog"

	"resto/internal/core/domain/services"
	"resto/internal/core/ports"
	"resto/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles the business logic for order
// status transitions. Checks run in a fixed order: the workflow rule
// against the currently stored status first, then the actor's authority
// for the transition. The final write is conditional on the status the
// handler observed, so a concurrent transition surfaces as a
// PreconditionFailedError rather than a silent overwrite.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
	publisher  ports.OrderPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// transition operations.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
	publisher ports.OrderPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
		logger:     logger.With("component", "update_order_status_handler"),
	}
}

// Handle processes the status transition command.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (OrderCommandResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderCommandResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderCommandResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.Actor().TenantID(), cmd.OrderID())
	if err != nil {
		return OrderCommandResult{}, err
	}

	expected := aggregate.Status()
	if _, err = expected.TransitionTo(cmd.Desired()); err != nil {
		return OrderCommandResult{}, err
	}

	if !h.policy.CanTransition(cmd.Actor(), aggregate, cmd.Desired()) {
		return OrderCommandResult{}, errs.NewAccessForbiddenError(
			fmt.Sprintf("transition order %s to %s", cmd.OrderID(), cmd.Desired()),
		)
	}

	if err = aggregate.ChangeStatus(cmd.Desired(), cmd.Actor().ID()); err != nil {
		return OrderCommandResult{}, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate, expected); err != nil {
		return OrderCommandResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderCommandResult{}, err
	}

	result := OrderCommandResult{Order: aggregate}
	if publishErr := h.publisher.PublishOrderChanged(ctx, aggregate); publishErr != nil {
		h.logger.WarnContext(ctx, "order snapshot emission failed",
			"orderId", aggregate.ID().String(), "error", publishErr)
		result.PublishWarning = fmt.Sprintf("order moved to %s, but snapshot emission failed", cmd.Desired())
	}

	return result, nil
}
