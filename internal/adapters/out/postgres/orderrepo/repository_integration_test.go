package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"resto/internal/adapters/out/postgres/orderrepo"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("tenant-1", "user-1")

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateKey_ReturnsAlreadyExists() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("tenant-1", "user-1")

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("tenant-1", "user-1")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.TenantID(), testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.IsEqual(loaded))
	suite.Equal(order.Created, loaded.Status())
	suite.Equal("user-1", loaded.CreatedBy())
	suite.Equal(testOrder.Items(), loaded.Items())
	suite.InDelta(testOrder.Total(), loaded.Total(), 0.0001)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()
	tenantID := suite.mustTenant("tenant-1")

	_, err := suite.repository.Get(ctx, tenantID, kernel.NewOrderID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_OtherTenant_ReturnsNotFoundError() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("tenant-1", "user-1")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	_, err := suite.repository.Get(ctx, suite.mustTenant("tenant-2"), testOrder.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MatchingPrecondition_Succeeds() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("tenant-1", "user-1")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	expected := testOrder.Status()
	suite.Require().NoError(testOrder.ChangeStatus(order.Cooking, "kitchen-1"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder, expected))

	loaded, err := suite.repository.Get(ctx, testOrder.TenantID(), testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cooking, loaded.Status())
	suite.Require().NotNil(loaded.PreparedBy())
	suite.Equal("kitchen-1", *loaded.PreparedBy())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StalePrecondition_ReturnsPreconditionFailed() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("tenant-1", "user-1")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// First transition wins.
	winner, err := suite.repository.Get(ctx, testOrder.TenantID(), testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(winner.ChangeStatus(order.Cooking, "kitchen-1"))
	suite.Require().NoError(suite.repository.Update(ctx, winner, order.Created))

	// Second transition still expects CREATED.
	loser, err := suite.repository.Get(ctx, testOrder.TenantID(), testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Equal(order.Cooking, loser.Status())

	restored, err := order.RestoreOrder(
		testOrder.ID(), testOrder.TenantID(), order.Cancelled, testOrder.Items(),
		testOrder.Total(), "user-1", nil, nil,
		testOrder.CreatedAt(), time.Now().UTC(), nil,
	)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, restored, order.Created)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrPreconditionFailed)

	loaded, err := suite.repository.Get(ctx, testOrder.TenantID(), testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cooking, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("tenant-1", "user-1")
	expected := testOrder.Status()
	suite.Require().NoError(testOrder.ChangeStatus(order.Cooking, "kitchen-1"))

	err := suite.repository.Update(ctx, testOrder, expected)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Concurrency_ExactlyOneWins() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("tenant-1", "user-1")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	results := make([]error, 2)
	var wg sync.WaitGroup
	transitions := []order.Status{order.Cooking, order.Cancelled}
	actors := []string{"kitchen-1", "user-1"}

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			attempt, err := suite.repository.Get(ctx, testOrder.TenantID(), testOrder.ID())
			if err != nil {
				results[idx] = err
				return
			}
			if err = attempt.ChangeStatus(transitions[idx], actors[idx]); err != nil {
				results[idx] = err
				return
			}
			results[idx] = suite.repository.Update(ctx, attempt, order.Created)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			suite.ErrorIs(err, errs.ErrPreconditionFailed)
		}
	}
	suite.Equal(1, succeeded)

	loaded, err := suite.repository.Get(ctx, testOrder.TenantID(), testOrder.ID())
	suite.Require().NoError(err)
	suite.Contains(transitions, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountCookingByTenant() {
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		cooking := suite.createTestOrder("tenant-1", "user-1")
		suite.Require().NoError(suite.repository.Add(ctx, cooking))
		suite.Require().NoError(cooking.ChangeStatus(order.Cooking, "kitchen-1"))
		suite.Require().NoError(suite.repository.Update(ctx, cooking, order.Created))
	}
	created := suite.createTestOrder("tenant-1", "user-2")
	suite.Require().NoError(suite.repository.Add(ctx, created))

	other := suite.createTestOrder("tenant-2", "user-3")
	suite.Require().NoError(suite.repository.Add(ctx, other))
	suite.Require().NoError(other.ChangeStatus(order.Cooking, "kitchen-2"))
	suite.Require().NoError(suite.repository.Update(ctx, other, order.Created))

	counts, err := suite.repository.CountCookingByTenant(ctx)
	suite.Require().NoError(err)
	suite.Equal(map[string]int{"tenant-1": 2, "tenant-2": 1}, counts)
}

func (suite *OrderRepositoryIntegrationTestSuite) mustTenant(value string) kernel.TenantID {
	tenantID, err := kernel.NewTenantID(value)
	suite.Require().NoError(err)
	return tenantID
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(tenant string, createdBy string) *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewOrderID(),
		suite.mustTenant(tenant),
		createdBy,
		[]order.Item{{DishRef: "DISH-1", Quantity: 2}},
		25.00,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
