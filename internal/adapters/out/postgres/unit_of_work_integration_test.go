package postgres_test

import (
	"context"
	"strings"
	"testing"
	"time"

	postgres_adapter "storefront/internal/adapters/out/postgres"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the GORM-based
// Unit of Work and its repositories against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE " + strings.Join(postgres_adapter.Tables, ", ")).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.CartRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.StatusHistoryRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

// TestUnitOfWork_StatusChangeIsAtomic saves an order and its ledger entry together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StatusChangeIsAtomic() {
	ctx := context.Background()
	testOrder := createTestOrder(suite.T(), "user-1")
	suite.Require().NoError(suite.factory.Create().OrderRepository().Save(ctx, testOrder))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	entry, err := testOrder.ChangeStatus(order.Confirmed, "paid")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Save(ctx, testOrder))
	suite.Require().NoError(uow.StatusHistoryRepository().Append(ctx, testOrder.ID(), entry))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	loaded, err := reader.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, loaded.Status())

	history, err := reader.StatusHistoryRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal(order.Pending, history[0].From())
	suite.Equal(order.Confirmed, history[0].To())
	suite.Equal("paid", history[0].Reason())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := createTestOrder(suite.T(), "user-1")
	testCart := createTestCart(suite.T(), "user-1")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Save(ctx, testOrder))
	suite.Require().NoError(uow.CartRepository().Save(ctx, testCart))

	_, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
	_, err = reader.CartRepository().Get(ctx, testCart.ID())
	suite.Require().Error(err, "Cart should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	order1 := createTestOrder(suite.T(), "user-1")
	order2 := createTestOrder(suite.T(), "user-2")

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.OrderRepository().Save(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Save(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = reader.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testCart := createTestCart(suite.T(), "user-1")

	suite.Require().NoError(uow.CartRepository().Save(ctx, testCart))

	retrieved, err := suite.factory.Create().CartRepository().GetByUserID(ctx, "user-1")
	suite.Require().NoError(err)
	suite.True(testCart.IsEqual(retrieved))
}

func createTestCart(t *testing.T, userID string) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(userID)
	if err != nil {
		t.Fatal(err)
	}
	for _, item := range createTestItems(t) {
		if err = c.AddItem(item); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func createTestOrder(t *testing.T, userID string) *order.Order {
	t.Helper()
	o := order.NewOrder(userID, "addr-1")
	for _, item := range createTestItems(t) {
		if err := o.AddItem(item); err != nil {
			t.Fatal(err)
		}
	}
	o.SetTaxAmount(kernel.Round2(o.Subtotal() * 0.08))
	o.SetShippingAmount(9.99)
	return o
}

// createTestItems returns 2 x 25.00 and 1 x 15.00.
func createTestItems(t *testing.T) []kernel.LineItem {
	t.Helper()
	first, err := kernel.NewLineItem("p1", "Kettle", "KET-1", 2, 25.00)
	if err != nil {
		t.Fatal(err)
	}
	second, err := kernel.NewLineItem("p2", "Mug", "MUG-1", 1, 15.00)
	if err != nil {
		t.Fatal(err)
	}
	return []kernel.LineItem{first, second}
}

func TestUnitOfWorkIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
