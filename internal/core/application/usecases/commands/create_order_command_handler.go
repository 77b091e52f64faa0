package commands

import (
	"context"
	"log/slog"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/core/ports"
)

// OrderCommandResult carries the affected order and, when the best-effort
// snapshot emission failed, a human-readable partial-success warning.
// The primary write has committed by the time the warning is produced.
type OrderCommandResult struct {
	Order          *order.Order
	PublishWarning string
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Generates the order identifier, persists the order in CREATED status and
// emits a snapshot for downstream consumers.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command.
// Uses a transaction so the order is fully persisted or rolled back on
// error; the snapshot emission runs after commit and never fails the
// operation.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (OrderCommandResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderCommandResult{}, err
	}

	aggregate, err := order.NewOrder(
		kernel.NewOrderID(),
		cmd.Actor().TenantID(),
		cmd.Actor().ID(),
		cmd.Items(),
		cmd.Total(),
	)
	if err != nil {
		return OrderCommandResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return OrderCommandResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return OrderCommandResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderCommandResult{}, err
	}

	result := OrderCommandResult{Order: aggregate}
	if publishErr := h.publisher.PublishOrderChanged(ctx, aggregate); publishErr != nil {
		h.logger.WarnContext(ctx, "order snapshot emission failed",
			"orderId", aggregate.ID().String(), "error", publishErr)
		result.PublishWarning = "order created, but snapshot emission failed"
	}

	return result, nil
}
