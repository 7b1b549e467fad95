package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"storefront/internal/adapters/out/memory"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/keylock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memoryCartUoWFactory struct{ *memory.UnitOfWorkFactory }

func (f memoryCartUoWFactory) Create() commands.CartUoW { return f.UnitOfWorkFactory.Create() }

type memoryOrderUoWFactory struct{ *memory.UnitOfWorkFactory }

func (f memoryOrderUoWFactory) Create() commands.OrderUoW { return f.UnitOfWorkFactory.Create() }

// fixture wires the handlers to an in-memory store.
type fixture struct {
	store     *memory.Store
	carts     commands.CartUoWFactory
	orders    commands.OrderUoWFactory
	locker    *keylock.Striped
	cache     ports.CartCache
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

func newFixture() *fixture {
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)
	return &fixture{
		store:     store,
		carts:     memoryCartUoWFactory{factory},
		orders:    memoryOrderUoWFactory{factory},
		locker:    keylock.New(keylock.DefaultStripes),
		cache:     nopCache{},
		publisher: nopPublisher{},
		logger:    slog.New(slog.DiscardHandler),
	}
}

func (f *fixture) cartRepo() ports.CartRepository { return memory.NewCartRepository(f.store) }

func (f *fixture) orderRepo() ports.OrderRepository { return memory.NewOrderRepository(f.store) }

func (f *fixture) historyRepo() ports.StatusHistoryRepository {
	return memory.NewStatusHistoryRepository(f.store)
}

func (f *fixture) addToCart(t *testing.T, userID, productID string, qty int, price float64) *cart.Cart {
	t.Helper()
	item, err := commands.NewItemInput(productID, "Product "+productID, "SKU-"+productID, qty, price)
	require.NoError(t, err)
	cmd, err := commands.NewAddToCartCommand(userID, item)
	require.NoError(t, err)
	h := commands.NewAddToCartCommandHandler(f.carts, f.locker, f.cache, f.logger)
	c, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return c
}

type nopCache struct{}

func (nopCache) Get(context.Context, string) (*cart.Cart, error) { return nil, ports.ErrCacheMiss }
func (nopCache) Set(context.Context, string, *cart.Cart) error   { return nil }
func (nopCache) Delete(context.Context, string) error            { return nil }

type nopPublisher struct{}

func (nopPublisher) PublishStatusChanged(context.Context, ports.OrderStatusChanged) error { return nil }

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

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
