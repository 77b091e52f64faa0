package kitchenrepo_test

import (
	"context"
	"testing"
	"time"

	"resto/internal/adapters/out/postgres/kitchenrepo"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/kitchen"
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

// KitchenRepositoryIntegrationTestSuite provides integration tests for KitchenRepository
// using PostgreSQL containers to verify database persistence behavior.
type KitchenRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *kitchenrepo.GormKitchenRepository
	tracker    *MockAggregateTracker
}

func (suite *KitchenRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&kitchenrepo.KitchenDTO{}))
}

func (suite *KitchenRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE kitchens").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = kitchenrepo.NewGormKitchenRepository(suite.db, suite.tracker)
}

func (suite *KitchenRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *KitchenRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	ctx := context.Background()
	testKitchen := suite.createTestKitchen("tenant-1", "Main", 8)

	suite.Require().NoError(suite.repository.Add(ctx, testKitchen))

	loaded, err := suite.repository.Get(ctx, testKitchen.TenantID(), testKitchen.ID())
	suite.Require().NoError(err)
	suite.Equal("Main", loaded.Name())
	suite.Equal(8, loaded.MaxCooking())
	suite.Equal(0, loaded.CurrentCooking())
	suite.True(loaded.Active())
}

func (suite *KitchenRepositoryIntegrationTestSuite) TestAdd_DuplicateKey_ReturnsAlreadyExists() {
	ctx := context.Background()
	testKitchen := suite.createTestKitchen("tenant-1", "Main", 8)

	suite.Require().NoError(suite.repository.Add(ctx, testKitchen))

	err := suite.repository.Add(ctx, testKitchen)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *KitchenRepositoryIntegrationTestSuite) TestUpdate_PersistsLoadAndActivity() {
	ctx := context.Background()
	testKitchen := suite.createTestKitchen("tenant-1", "Main", 8)
	suite.Require().NoError(suite.repository.Add(ctx, testKitchen))

	suite.Require().NoError(testKitchen.SetLoad(5))
	testKitchen.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, testKitchen))

	loaded, err := suite.repository.Get(ctx, testKitchen.TenantID(), testKitchen.ID())
	suite.Require().NoError(err)
	suite.Equal(5, loaded.CurrentCooking())
	suite.False(loaded.Active())
}

func (suite *KitchenRepositoryIntegrationTestSuite) TestUpdate_NonExistentKitchen_ReturnsNotFoundError() {
	ctx := context.Background()
	testKitchen := suite.createTestKitchen("tenant-1", "Main", 8)

	err := suite.repository.Update(ctx, testKitchen)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *KitchenRepositoryIntegrationTestSuite) TestGetAllActive_SkipsDeactivated() {
	ctx := context.Background()

	active1 := suite.createTestKitchen("tenant-1", "Main", 8)
	suite.Require().NoError(suite.repository.Add(ctx, active1))

	active2 := suite.createTestKitchen("tenant-2", "Other", 4)
	suite.Require().NoError(suite.repository.Add(ctx, active2))

	inactive := suite.createTestKitchen("tenant-1", "Closed", 4)
	suite.Require().NoError(suite.repository.Add(ctx, inactive))
	inactive.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, inactive))

	kitchens, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Len(kitchens, 2)
	for _, k := range kitchens {
		suite.True(k.Active())
	}
}

func (suite *KitchenRepositoryIntegrationTestSuite) createTestKitchen(
	tenant string, name string, maxCooking int,
) *kitchen.Kitchen {
	tenantID, err := kernel.NewTenantID(tenant)
	suite.Require().NoError(err)

	testKitchen, err := kitchen.NewKitchen(kernel.NewKitchenID(), tenantID, name, maxCooking)
	suite.Require().NoError(err)
	return testKitchen
}

func TestKitchenRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(KitchenRepositoryIntegrationTestSuite))
}
