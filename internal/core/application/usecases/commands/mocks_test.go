package commands_test

import (
	"context"
	"testing"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/domain/model/actor"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/kitchen"
	"resto/internal/core/domain/model/menu"
	"resto/internal/core/domain/model/order"
	"resto/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, tenantID kernel.TenantID, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) CountCookingByTenant(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

type MockKitchenRepository struct{ mock.Mock }

func (m *MockKitchenRepository) Add(ctx context.Context, k *kitchen.Kitchen) error {
	args := m.Called(ctx, k)
	return args.Error(0)
}

func (m *MockKitchenRepository) Update(ctx context.Context, k *kitchen.Kitchen) error {
	args := m.Called(ctx, k)
	return args.Error(0)
}

func (m *MockKitchenRepository) Get(ctx context.Context, tenantID kernel.TenantID, id kernel.KitchenID) (*kitchen.Kitchen, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kitchen.Kitchen), args.Error(1)
}

func (m *MockKitchenRepository) GetAllActive(ctx context.Context) ([]*kitchen.Kitchen, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*kitchen.Kitchen), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, d *menu.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, d *menu.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, tenantID kernel.TenantID, id kernel.DishID) (*menu.Dish, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Dish), args.Error(1)
}

func (m *MockMenuRepository) Remove(ctx context.Context, tenantID kernel.TenantID, id kernel.DishID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

// MockUoW implements every UoW flavor used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) KitchenRepository() ports.KitchenRepository {
	args := m.Called()
	return args.Get(0).(ports.KitchenRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockKitchenUoWFactory struct{ mock.Mock }

func (m *MockKitchenUoWFactory) Create() commands.KitchenUoW {
	args := m.Called()
	return args.Get(0).(commands.KitchenUoW)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderPublisher struct{ mock.Mock }

func (m *MockOrderPublisher) PublishOrderChanged(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func mustTenant(t *testing.T, value string) kernel.TenantID {
	t.Helper()
	tenant, err := kernel.NewTenantID(value)
	require.NoError(t, err)
	return tenant
}

func mustActor(t *testing.T, tenant string, id string, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(mustTenant(t, tenant), id, role)
	require.NoError(t, err)
	return a
}

func mustOrder(t *testing.T, tenant string, createdBy string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewOrderID(),
		mustTenant(t, tenant),
		createdBy,
		[]order.Item{{DishRef: "DISH-1", Quantity: 1}},
		12.50,
	)
	require.NoError(t, err)
	return o
}
