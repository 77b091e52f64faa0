package menurepo_test

import (
	"context"
	"testing"
	"time"

	"resto/internal/adapters/out/postgres/menurepo"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/menu"
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

// MenuRepositoryIntegrationTestSuite provides integration tests for MenuRepository
// using PostgreSQL containers to verify database persistence behavior.
type MenuRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *menurepo.GormMenuRepository
	tracker    *MockAggregateTracker
}

func (suite *MenuRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&menurepo.DishDTO{}))
}

func (suite *MenuRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE dishes").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = menurepo.NewGormMenuRepository(suite.db, suite.tracker)
}

func (suite *MenuRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MenuRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	ctx := context.Background()
	dish := suite.createTestDish("tenant-1", "Borscht", 7.50)

	suite.Require().NoError(suite.repository.Add(ctx, dish))

	loaded, err := suite.repository.Get(ctx, dish.TenantID(), dish.ID())
	suite.Require().NoError(err)
	suite.Equal("Borscht", loaded.Name())
	suite.InDelta(7.50, loaded.Price(), 0.0001)
	suite.True(loaded.Available())
}

func (suite *MenuRepositoryIntegrationTestSuite) TestUpdate_PersistsChanges() {
	ctx := context.Background()
	dish := suite.createTestDish("tenant-1", "Borscht", 7.50)
	suite.Require().NoError(suite.repository.Add(ctx, dish))

	suite.Require().NoError(dish.Update("Borscht", "beet soup, large", 8.50, false, ""))
	suite.Require().NoError(suite.repository.Update(ctx, dish))

	loaded, err := suite.repository.Get(ctx, dish.TenantID(), dish.ID())
	suite.Require().NoError(err)
	suite.InDelta(8.50, loaded.Price(), 0.0001)
	suite.False(loaded.Available())
	suite.Equal("beet soup, large", loaded.Description())
}

func (suite *MenuRepositoryIntegrationTestSuite) TestRemove_DeletesDish() {
	ctx := context.Background()
	dish := suite.createTestDish("tenant-1", "Borscht", 7.50)
	suite.Require().NoError(suite.repository.Add(ctx, dish))

	suite.Require().NoError(suite.repository.Remove(ctx, dish.TenantID(), dish.ID()))

	_, err := suite.repository.Get(ctx, dish.TenantID(), dish.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MenuRepositoryIntegrationTestSuite) TestRemove_NonExistentDish_ReturnsNotFoundError() {
	ctx := context.Background()
	tenantID, err := kernel.NewTenantID("tenant-1")
	suite.Require().NoError(err)

	err = suite.repository.Remove(ctx, tenantID, kernel.NewDishID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MenuRepositoryIntegrationTestSuite) TestRemove_OtherTenant_ReturnsNotFoundError() {
	ctx := context.Background()
	dish := suite.createTestDish("tenant-1", "Borscht", 7.50)
	suite.Require().NoError(suite.repository.Add(ctx, dish))

	otherTenant, err := kernel.NewTenantID("tenant-2")
	suite.Require().NoError(err)

	err = suite.repository.Remove(ctx, otherTenant, dish.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.Get(ctx, dish.TenantID(), dish.ID())
	suite.Require().NoError(err)
}

func (suite *MenuRepositoryIntegrationTestSuite) createTestDish(
	tenant string, name string, price float64,
) *menu.Dish {
	tenantID, err := kernel.NewTenantID(tenant)
	suite.Require().NoError(err)

	dish, err := menu.NewDish(kernel.NewDishID(), tenantID, name, "", price, "")
	suite.Require().NoError(err)
	return dish
}

func TestMenuRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MenuRepositoryIntegrationTestSuite))
}
