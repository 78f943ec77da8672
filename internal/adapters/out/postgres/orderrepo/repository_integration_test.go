package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"supplyline/internal/adapters/out/postgres/orderrepo"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior.
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
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(number string) *order.Order {
	productID := kernel.NewUUID()
	item, err := order.NewItem(productID, "Rice 5kg", 3, 50, "bag")
	suite.Require().NoError(err)

	prefs, err := order.NewDeliveryPreferences(
		"House 12, Road 3", "Uttara", "Dhaka", "", nil, order.PaymentCashOnDelivery)
	suite.Require().NoError(err)

	actor, err := order.NewActor("Rahim Uddin", user.RoleShopkeeper)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), number, kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, prefs, "", actor, time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-0001")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsConflict() {
	ctx := context.Background()

	first := suite.createTestOrder("ORD-0042")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestOrder("ORD-0042")
	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestOrder("ORD-0007")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.Equal("ORD-0007", retrieved.Number())
	suite.Equal(order.StatusPending, retrieved.Status())
	suite.Len(retrieved.Items(), 1)
	suite.Equal("Rice 5kg", retrieved.Items()[0].ProductName())
	suite.InDelta(original.FinalAmount(), retrieved.FinalAmount(), 0.001)
	suite.Equal("Uttara", retrieved.Preferences().Area())
	suite.Len(retrieved.Timeline(), 1)
	suite.Equal("Rahim Uddin", retrieved.Timeline()[0].Actor().Name())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	original := suite.createTestOrder("ORD-0015")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByNumber(ctx, "ORD-0015")
	suite.Require().NoError(err)
	suite.True(original.ID().IsEqual(retrieved.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusChange_PersistsTimeline() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-0003")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	actor, err := order.NewActor("Karim Traders", user.RoleCompanyRep)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.ChangeStatus(order.StatusApproved, actor, "", time.Now().UTC()))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusApproved, retrieved.Status())
	suite.Len(retrieved.Timeline(), 2)
	suite.Equal(order.StatusApproved, retrieved.Timeline()[1].Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-0099")

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllOverdue_FiltersTerminalAndRecent() {
	ctx := context.Background()

	overdue := suite.createTestOrder("ORD-0010")
	recent := suite.createTestOrder("ORD-0011")
	for _, o := range []*order.Order{overdue, recent} {
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	// Age the first order past the cutoff directly in the database.
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", overdue.ID().Bytes()).
		Update("created_at", time.Now().UTC().Add(-72*time.Hour)).Error)

	cutoff := time.Now().UTC().Add(-48 * time.Hour)
	results, err := suite.repository.GetAllOverdue(ctx, cutoff)
	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Equal("ORD-0010", results[0].Number())
	suite.tracker.AssertExpectations(suite.T())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
