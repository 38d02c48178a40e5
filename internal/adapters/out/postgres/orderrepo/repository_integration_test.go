package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"waiter/internal/adapters/out/postgres/orderrepo"
	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/menu"
	"waiter/internal/core/domain/model/order"
	"waiter/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL container.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createMenuItem(name string, price float64) *menu.MenuItem {
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, price, true)
	suite.Require().NoError(err)
	return item
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder(kernel.NewUUID(), "alice", time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)

	item := suite.createMenuItem("Margherita", 5.0)
	suite.Require().NoError(testOrder.AddLine(kernel.NewUUID(), item, 2, "no basil"))
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var orderCount, lineCount int64
	suite.Require().NoError(suite.db.Table("orders").Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Table("order_lines").Count(&lineCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(1), lineCount)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_StatusSetWithoutPayment_RoundTrip() {
	// SetStatus can park an order in PAID with no payment method. Such an
	// order must load back so later operations can still reach it.
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(testOrder.SetStatus(order.Paid))
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Paid, restored.Status())
	suite.Nil(restored.PaymentMethod())
	suite.Require().NoError(restored.Refund("manager", "comped", time.Now().UTC()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(testOrder))
	suite.Equal(order.New, restored.Status())
	suite.Equal("alice", restored.Waiter())
	suite.InDelta(10.0, restored.Total(), 1e-9)
	suite.Require().Len(restored.Lines(), 1)
	line := restored.Lines()[0]
	suite.Equal("Margherita", line.Name())
	suite.Equal(2, line.Quantity())
	suite.Equal("no basil", line.Comment())
	suite.InDelta(5.0, line.UnitPrice(), 1e-9)
	suite.Nil(restored.PaymentMethod())
	suite.Nil(restored.RefundedBy())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesLines() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	item := suite.createMenuItem("Tiramisu", 4.5)
	suite.Require().NoError(testOrder.AddLine(kernel.NewUUID(), item, 1, ""))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Len(restored.Lines(), 2)
	suite.InDelta(14.5, restored.Total(), 1e-9)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_RemovedLineDisappears() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	menuItemID := testOrder.Lines()[0].MenuItemID()
	suite.Require().NoError(testOrder.RemoveLine(menuItemID, 5))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Empty(restored.Lines())
	suite.InDelta(0.0, restored.Total(), 1e-9)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PaidOrderKeepsMethodAndTotal() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.SetStatus(order.Ready))
	suite.Require().NoError(testOrder.Pay(order.Card))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paid, restored.Status())
	suite.Require().NotNil(restored.PaymentMethod())
	suite.Equal(order.Card, *restored.PaymentMethod())
	suite.InDelta(10.0, restored.Total(), 1e-9)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_RefundedOrderKeepsAudit() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.SetStatus(order.Ready))
	suite.Require().NoError(testOrder.Pay(order.Cash))
	refundedAt := time.Now().UTC().Truncate(time.Microsecond)
	suite.Require().NoError(testOrder.Refund("manager", "cold food", refundedAt))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Refunded, restored.Status())
	suite.Require().NotNil(restored.RefundedBy())
	suite.Equal("manager", *restored.RefundedBy())
	suite.Require().NotNil(restored.RefundReason())
	suite.Equal("cold food", *restored.RefundReason())
	suite.Require().NotNil(restored.RefundedAt())
	suite.True(refundedAt.Equal(restored.RefundedAt().UTC()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_OldestFirst() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()

	older, err := order.NewOrder(kernel.NewUUID(), "alice", time.Now().UTC().Add(-time.Hour))
	suite.Require().NoError(err)
	newer, err := order.NewOrder(kernel.NewUUID(), "bob", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, older))

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.True(orders[0].IsEqual(older))
	suite.True(orders[1].IsEqual(newer))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndLines() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))

	_, err := suite.repository.Get(ctx, testOrder.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	var lineCount int64
	suite.Require().NoError(suite.db.Table("order_lines").Count(&lineCount).Error)
	suite.Equal(int64(0), lineCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
