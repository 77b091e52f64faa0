package commands

import (
	"context"

	"resto/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles the business logic for order
// cancellation. Cancellation is a regular status transition to CANCELLED,
// so the handler delegates to the status transition handler and inherits
// its workflow, authorization and conditional-write behavior.
type CancelOrderCommandHandler struct {
	statusHandler UpdateOrderStatusCommandHandler
}

// NewCancelOrderCommandHandler creates a handler for order cancellation
// operations.
func NewCancelOrderCommandHandler(statusHandler UpdateOrderStatusCommandHandler) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		statusHandler: statusHandler,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (OrderCommandResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderCommandResult{}, err
	}

	statusCmd, err := NewUpdateOrderStatusCommand(cmd.Actor(), cmd.OrderID(), order.Cancelled)
	if err != nil {
		return OrderCommandResult{}, err
	}

	return h.statusHandler.Handle(ctx, statusCmd)
}
