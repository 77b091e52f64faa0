package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/domain/model/actor"
	"resto/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	a := mustActor(t, "tenant-1", "user-1", actor.User)
	cmd, _ := commands.NewCreateOrderCommand(a, []order.Item{{DishRef: "DISH-1", Quantity: 2}}, 25.00)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockOrderPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)
	uow.On("Rollback", ctx).Return(nil).Once()
	publisher.On("PublishOrderChanged", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, result.Order)
	assert.Equal(t, order.Created, result.Order.Status())
	assert.Equal(t, "user-1", result.Order.CreatedBy())
	assert.Empty(t, result.PublishWarning)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, new(MockOrderPublisher), discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	a := mustActor(t, "tenant-1", "user-1", actor.User)
	cmd, _ := commands.NewCreateOrderCommand(a, nil, 0)

	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, new(MockOrderPublisher), discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	a := mustActor(t, "tenant-1", "user-1", actor.User)
	cmd, _ := commands.NewCreateOrderCommand(a, nil, 0)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, new(MockOrderPublisher), discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_PublishFailureIsPartialSuccess(t *testing.T) {
	ctx := t.Context()
	a := mustActor(t, "tenant-1", "user-1", actor.User)
	cmd, _ := commands.NewCreateOrderCommand(a, []order.Item{{DishRef: "DISH-1", Quantity: 1}}, 9.99)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockOrderPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)
	uow.On("Rollback", ctx).Return(nil).Once()
	publisher.On("PublishOrderChanged", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errors.New("broker unreachable")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, result.Order)
	assert.NotEmpty(t, result.PublishWarning)
}
