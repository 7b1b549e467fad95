package queries_test

import (
	"context"
	"log/slog"
	"testing"

	"storefront/internal/adapters/out/memory"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/keylock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store   *memory.Store
	factory *memory.UnitOfWorkFactory
	locker  *keylock.Striped
	logger  *slog.Logger
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		store:   store,
		factory: memory.NewUnitOfWorkFactory(store),
		locker:  keylock.New(keylock.DefaultStripes),
		logger:  slog.New(slog.DiscardHandler),
	}
}

func (f *fixture) seedCart(t *testing.T, userID string, qty int, price float64) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(userID)
	require.NoError(t, err)
	item, err := kernel.NewLineItem("p1", "Mug", "MUG-1", qty, price)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(item))
	require.NoError(t, memory.NewCartRepository(f.store).Save(t.Context(), c))
	return c
}

func (f *fixture) seedOrder(t *testing.T, userID string, status order.Status) *order.Order {
	t.Helper()
	o := order.NewOrder(userID, "addr-1")
	item, err := kernel.NewLineItem("p1", "Mug", "MUG-1", 2, 25.00)
	require.NoError(t, err)
	require.NoError(t, o.AddItem(item))
	o.SetTaxAmount(4.00)
	if status != order.Pending {
		o.SetStatus(status)
	}
	require.NoError(t, memory.NewOrderRepository(f.store).Save(t.Context(), o))
	return o
}

type MockCartCache struct{ mock.Mock }

func (m *MockCartCache) Get(ctx context.Context, userID string) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}

func (m *MockCartCache) Set(ctx context.Context, userID string, snapshot *cart.Cart) error {
	args := m.Called(ctx, userID, snapshot)
	return args.Error(0)
}

func (m *MockCartCache) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ ports.CartCache = (*MockCartCache)(nil)
