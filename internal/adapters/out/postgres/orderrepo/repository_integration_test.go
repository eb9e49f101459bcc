package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(branch kernel.Branch) *order.Order {
	price := 950.0
	o, err := order.NewOrder(branch, []product.Product{
		{ID: "1", Name: "Milk", Category: "Dairy", Unit: product.UnitLiter, LastPrice: &price},
		{ID: "60", Name: "Potato", Category: "Vegetables", Unit: product.UnitKg},
	}, time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.BranchChilanzar)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsSnapshot() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.BranchUchtepa)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), loaded.ID())
	suite.Equal(order.StatusSentToChef, loaded.Status())
	suite.Equal(kernel.BranchUchtepa, loaded.Branch())

	products := loaded.Products()
	suite.Require().Len(products, 2)
	suite.Equal("1", products[0].ID)
	suite.Require().NotNil(products[0].LastPrice)
	suite.InDelta(950, *products[0].LastPrice, 0.001)
	suite.Nil(products[1].LastPrice)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), "missing-id")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransition() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.BranchChilanzar)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.Require().NoError(testOrder.Submit(order.QuantityEdits{"1": 5}))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusSentToFinancier, loaded.Status())
	suite.Equal(float64(5), loaded.Products()[0].Quantity)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingRow() {
	testOrder := suite.createTestOrder(kernel.BranchChilanzar)

	err := suite.repository.Update(context.Background(), testOrder)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByBranchInStatuses() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	chilanzar := suite.createTestOrder(kernel.BranchChilanzar)
	uchtepa := suite.createTestOrder(kernel.BranchUchtepa)
	suite.Require().NoError(suite.repository.Add(ctx, chilanzar))
	suite.Require().NoError(suite.repository.Add(ctx, uchtepa))

	orders, err := suite.repository.GetByBranchInStatuses(ctx, kernel.BranchChilanzar, order.InFlightStatuses())
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(chilanzar.ID(), orders[0].ID())

	orders, err = suite.repository.GetByBranchInStatuses(ctx, kernel.BranchOlmazar, order.InFlightStatuses())
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatuses() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	first := suite.createTestOrder(kernel.BranchChilanzar)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(first.Submit(order.QuantityEdits{"1": 5}))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	second := suite.createTestOrder(kernel.BranchUchtepa)
	suite.Require().NoError(suite.repository.Add(ctx, second))

	awaitingChef, err := suite.repository.GetAllInStatuses(ctx, []order.Status{order.StatusSentToChef})
	suite.Require().NoError(err)
	suite.Require().Len(awaitingChef, 1)
	suite.Equal(second.ID(), awaitingChef[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetLatestCompletedByBranch() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	_, err := suite.repository.GetLatestCompletedByBranch(ctx, kernel.BranchChilanzar)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	price := 12000.0
	older, err := order.RestoreOrder("00000000-0000-0000-0000-000000000001", order.StatusCompleted,
		kernel.BranchChilanzar, []product.Product{
			{ID: "1", Name: "Milk", Quantity: 5, Unit: product.UnitLiter, Price: &price},
		}, time.Now().UTC().Add(-48*time.Hour), nil, nil)
	suite.Require().NoError(err)
	newer, err := order.RestoreOrder("00000000-0000-0000-0000-000000000002", order.StatusCompleted,
		kernel.BranchChilanzar, []product.Product{
			{ID: "1", Name: "Milk", Quantity: 3, Unit: product.UnitLiter, Price: &price},
		}, time.Now().UTC(), nil, nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	latest, err := suite.repository.GetLatestCompletedByBranch(ctx, kernel.BranchChilanzar)
	suite.Require().NoError(err)
	suite.Equal(newer.ID(), latest.ID())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
