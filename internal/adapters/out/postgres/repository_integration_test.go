package postgres_test

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

func (suite *UnitOfWorkIntegrationTestSuite) TestCartRepository_RoundTrip() {
	ctx := context.Background()
	repo := suite.factory.Create().CartRepository()
	testCart := createTestCart(suite.T(), "user-1")

	suite.Require().NoError(repo.Save(ctx, testCart))

	loaded, err := repo.Get(ctx, testCart.ID())
	suite.Require().NoError(err)
	suite.Equal("user-1", loaded.UserID())
	suite.Equal(65.00, loaded.TotalAmount())
	suite.Equal(3, loaded.ItemCount())
	items := loaded.Items()
	suite.Require().Len(items, 2)
	suite.Equal("p1", items[0].ProductID())
	suite.Equal(50.00, items[0].LineTotal())
	suite.WithinDuration(testCart.UpdatedAt(), loaded.UpdatedAt(), time.Millisecond)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCartRepository_SaveReplacesLines() {
	ctx := context.Background()
	repo := suite.factory.Create().CartRepository()
	testCart := createTestCart(suite.T(), "user-1")
	suite.Require().NoError(repo.Save(ctx, testCart))

	suite.True(testCart.RemoveItem("p1"))
	suite.True(testCart.UpdateItemQuantity("p2", 4))
	suite.Require().NoError(repo.Save(ctx, testCart))

	loaded, err := repo.GetByUserID(ctx, "user-1")
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Items(), 1)
	suite.Equal(60.00, loaded.TotalAmount())

	count, err := repo.Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCartRepository_Delete() {
	ctx := context.Background()
	repo := suite.factory.Create().CartRepository()
	first := createTestCart(suite.T(), "user-1")
	second := createTestCart(suite.T(), "user-2")
	suite.Require().NoError(repo.Save(ctx, first))
	suite.Require().NoError(repo.Save(ctx, second))

	suite.Require().NoError(repo.Delete(ctx, first.ID()))
	suite.Require().NoError(repo.DeleteByUserID(ctx, "user-2"))

	suite.Require().ErrorIs(repo.Delete(ctx, first.ID()), errs.ErrObjectNotFound)
	suite.Require().ErrorIs(repo.DeleteByUserID(ctx, "user-2"), errs.ErrObjectNotFound)
	_, err := repo.GetByUserID(ctx, "user-1")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCartRepository_Paging() {
	ctx := context.Background()
	repo := suite.factory.Create().CartRepository()
	for _, user := range []string{"a", "b", "c"} {
		suite.Require().NoError(repo.Save(ctx, createTestCart(suite.T(), user)))
	}

	firstPage, err := repo.GetAll(ctx, 0, 2)
	suite.Require().NoError(err)
	suite.Len(firstPage, 2)
	secondPage, err := repo.GetAll(ctx, 2, 2)
	suite.Require().NoError(err)
	suite.Len(secondPage, 1)

	stale, err := repo.GetUpdatedBefore(ctx, time.Now().UTC().Add(time.Hour))
	suite.Require().NoError(err)
	suite.Len(stale, 3)
	fresh, err := repo.GetUpdatedBefore(ctx, time.Now().UTC().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Empty(fresh)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_RoundTrip() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()
	testOrder := createTestOrder(suite.T(), "user-1")
	testOrder.SetBillingAddressID("bill-1")
	testOrder.SetNotes("ring twice")

	suite.Require().NoError(repo.Save(ctx, testOrder))

	loaded, err := repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(65.00, loaded.Subtotal())
	suite.Equal(5.20, loaded.TaxAmount())
	suite.Equal(9.99, loaded.ShippingAmount())
	suite.Equal(80.19, loaded.TotalAmount())
	suite.Equal("addr-1", loaded.ShippingAddressID())
	suite.Equal("bill-1", loaded.BillingAddressID())
	suite.Equal("ring twice", loaded.Notes())
	suite.Len(loaded.Items(), 2)

	_, err = repo.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_Queries() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()
	first := createTestOrder(suite.T(), "user-1")
	second := createTestOrder(suite.T(), "user-1")
	second.SetStatus(order.OnHold)
	third := createTestOrder(suite.T(), "user-2")
	for _, o := range []*order.Order{first, second, third} {
		suite.Require().NoError(repo.Save(ctx, o))
	}

	byUser, err := repo.GetByUserID(ctx, "user-1")
	suite.Require().NoError(err)
	suite.Len(byUser, 2)

	onHold, err := repo.GetByStatus(ctx, order.OnHold)
	suite.Require().NoError(err)
	suite.Require().Len(onHold, 1)
	suite.True(onHold[0].IsEqual(second))

	page, err := repo.GetAll(ctx, 1, 5)
	suite.Require().NoError(err)
	suite.Len(page, 2)

	count, err := repo.Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(3), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_DeleteDropsLedger() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := createTestOrder(suite.T(), "user-1")
	suite.Require().NoError(uow.OrderRepository().Save(ctx, testOrder))
	entry, err := testOrder.ChangeStatus(order.Cancelled, "duplicate")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.StatusHistoryRepository().Append(ctx, testOrder.ID(), entry))

	suite.Require().NoError(uow.OrderRepository().Delete(ctx, testOrder.ID()))

	history, err := uow.StatusHistoryRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Empty(history)
	suite.Require().ErrorIs(uow.OrderRepository().Delete(ctx, testOrder.ID()), errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCartRepository_KeepsSubCentPrices() {
	ctx := context.Background()
	repo := suite.factory.Create().CartRepository()
	testCart, err := cart.NewCart("user-1")
	suite.Require().NoError(err)
	item, err := kernel.NewLineItem("p1", "Screw", "SCR-1", 3, 0.125)
	suite.Require().NoError(err)
	suite.Require().NoError(testCart.AddItem(item))
	suite.Require().Equal(0.38, testCart.TotalAmount())

	suite.Require().NoError(repo.Save(ctx, testCart))

	loaded, err := repo.Get(ctx, testCart.ID())
	suite.Require().NoError(err)
	suite.Equal(0.125, loaded.Items()[0].UnitPrice())
	suite.Equal(0.38, loaded.TotalAmount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_KeepsSubCentInputs() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()
	testOrder := order.NewOrder("user-1", "addr-1")
	item, err := kernel.NewLineItem("p1", "Screw", "SCR-1", 3, 0.125)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AddItem(item))
	testOrder.SetShippingAmount(1.005)
	expectedTotal := testOrder.TotalAmount()

	suite.Require().NoError(repo.Save(ctx, testOrder))

	loaded, err := repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(0.125, loaded.Items()[0].UnitPrice())
	suite.Equal(0.38, loaded.Subtotal())
	suite.Equal(1.005, loaded.ShippingAmount())
	suite.Equal(expectedTotal, loaded.TotalAmount())
}
