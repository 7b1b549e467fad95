package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartCommands_Constructors(t *testing.T) {
	t.Run("should reject blank user ids", func(t *testing.T) {
		_, err := commands.NewGetOrCreateCartCommand(" ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewClearCartCommand("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewDeleteCartCommand("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		_, err := commands.NewUpdateCartItemQuantityCommand("user-1", "p1", -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("should join every invalid field", func(t *testing.T) {
		_, err := commands.NewRemoveFromCartCommand("", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "userId")
		assert.Contains(t, err.Error(), "productId")
	})

	t.Run("should reject an unconstructed item", func(t *testing.T) {
		_, err := commands.NewAddToCartCommand("user-1", commands.ItemInput{})

		require.ErrorIs(t, err, commands.ErrItemInputIsNotConstructed)
	})

	t.Run("handlers should reject unconstructed commands", func(t *testing.T) {
		f := newFixture()
		h := commands.NewAddToCartCommandHandler(f.carts, f.locker, f.cache, f.logger)

		_, err := h.Handle(t.Context(), commands.AddToCartCommand{})

		require.ErrorIs(t, err, commands.ErrAddToCartCommandIsNotConstructed)
	})
}

func TestGetOrCreateCartCommandHandler(t *testing.T) {
	t.Run("should return the same cart on repeated calls", func(t *testing.T) {
		// Given
		f := newFixture()
		h := commands.NewGetOrCreateCartCommandHandler(f.carts, f.locker, f.logger)
		cmd, err := commands.NewGetOrCreateCartCommand("user-1")
		require.NoError(t, err)

		// When
		first, err := h.Handle(t.Context(), cmd)
		require.NoError(t, err)
		second, err := h.Handle(t.Context(), cmd)
		require.NoError(t, err)

		// Then
		assert.True(t, first.ID().IsEqual(second.ID()))
		assert.True(t, first.IsEmpty())
		count, err := f.cartRepo().Count(t.Context())
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestAddToCartCommandHandler(t *testing.T) {
	t.Run("should merge lines for the same product", func(t *testing.T) {
		// Given
		f := newFixture()
		f.addToCart(t, "user-1", "p1", 2, 10.00)

		// When
		c := f.addToCart(t, "user-1", "p1", 3, 10.00)

		// Then
		require.Len(t, c.Items(), 1)
		assert.Equal(t, 5, c.Items()[0].Quantity())
		assert.InDelta(t, 50.00, c.TotalAmount(), 0.001)

		stored, err := f.cartRepo().GetByUserID(t.Context(), "user-1")
		require.NoError(t, err)
		assert.True(t, stored.ID().IsEqual(c.ID()))
		assert.InDelta(t, 50.00, stored.TotalAmount(), 0.001)
	})

	t.Run("should keep the existing unit price on merge", func(t *testing.T) {
		f := newFixture()
		f.addToCart(t, "user-1", "p1", 1, 10.00)

		c := f.addToCart(t, "user-1", "p1", 1, 99.00)

		assert.InDelta(t, 10.00, c.Items()[0].UnitPrice(), 0.001)
		assert.InDelta(t, 20.00, c.TotalAmount(), 0.001)
	})

	t.Run("should invalidate the cached cart after commit", func(t *testing.T) {
		// Given
		f := newFixture()
		cache := new(MockCartCache)
		cache.On("Delete", mock.Anything, "user-1").Return(nil).Once()
		h := commands.NewAddToCartCommandHandler(f.carts, f.locker, cache, f.logger)
		item, _ := commands.NewItemInput("p1", "Mug", "MUG-1", 1, 5)
		cmd, _ := commands.NewAddToCartCommand("user-1", item)

		// When
		_, err := h.Handle(t.Context(), cmd)

		// Then
		require.NoError(t, err)
		cache.AssertExpectations(t)
	})

	t.Run("should keep the committed change when invalidation fails", func(t *testing.T) {
		f := newFixture()
		cache := new(MockCartCache)
		cache.On("Delete", mock.Anything, "user-1").Return(errors.New("redis down")).Once()
		h := commands.NewAddToCartCommandHandler(f.carts, f.locker, cache, f.logger)
		item, _ := commands.NewItemInput("p1", "Mug", "MUG-1", 1, 5)
		cmd, _ := commands.NewAddToCartCommand("user-1", item)

		_, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		stored, err := f.cartRepo().GetByUserID(t.Context(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1, stored.ItemCount())
	})

	t.Run("should not lose concurrent additions", func(t *testing.T) {
		// Given
		f := newFixture()
		h := commands.NewAddToCartCommandHandler(f.carts, f.locker, f.cache, f.logger)
		item, _ := commands.NewItemInput("p1", "Mug", "MUG-1", 1, 1.00)
		cmd, _ := commands.NewAddToCartCommand("user-1", item)
		const workers = 50

		// When
		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := h.Handle(t.Context(), cmd)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		// Then
		stored, err := f.cartRepo().GetByUserID(t.Context(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, workers, stored.ItemCount())
		assert.InDelta(t, 50.00, stored.TotalAmount(), 0.001)
		count, err := f.cartRepo().Count(t.Context())
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestRemoveFromCartCommandHandler(t *testing.T) {
	t.Run("should remove the product line", func(t *testing.T) {
		f := newFixture()
		f.addToCart(t, "user-1", "p1", 1, 10.00)
		f.addToCart(t, "user-1", "p2", 2, 2.50)
		h := commands.NewRemoveFromCartCommandHandler(f.carts, f.locker, f.cache, f.logger)
		cmd, _ := commands.NewRemoveFromCartCommand("user-1", "p1")

		c, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		require.Len(t, c.Items(), 1)
		assert.Equal(t, "p2", c.Items()[0].ProductID())
		assert.InDelta(t, 5.00, c.TotalAmount(), 0.001)
	})

	t.Run("should return not found and leave the cart unchanged", func(t *testing.T) {
		// Given
		f := newFixture()
		before := f.addToCart(t, "user-1", "p1", 1, 10.00)
		h := commands.NewRemoveFromCartCommandHandler(f.carts, f.locker, f.cache, f.logger)
		cmd, _ := commands.NewRemoveFromCartCommand("user-1", "missing")

		// When
		_, err := h.Handle(t.Context(), cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		stored, err := f.cartRepo().GetByUserID(t.Context(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, before.Items(), stored.Items())
		assert.Equal(t, before.UpdatedAt(), stored.UpdatedAt())
	})

	t.Run("should not persist a cart for a user without one", func(t *testing.T) {
		f := newFixture()
		h := commands.NewRemoveFromCartCommandHandler(f.carts, f.locker, f.cache, f.logger)
		cmd, _ := commands.NewRemoveFromCartCommand("user-1", "p1")

		_, err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		_, err = f.cartRepo().GetByUserID(t.Context(), "user-1")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestUpdateCartItemQuantityCommandHandler(t *testing.T) {
	t.Run("should set the new quantity", func(t *testing.T) {
		f := newFixture()
		f.addToCart(t, "user-1", "p1", 1, 4.00)
		h := commands.NewUpdateCartItemQuantityCommandHandler(f.carts, f.locker, f.cache, f.logger)
		cmd, _ := commands.NewUpdateCartItemQuantityCommand("user-1", "p1", 3)

		c, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 3, c.ItemCount())
		assert.InDelta(t, 12.00, c.TotalAmount(), 0.001)
	})

	t.Run("should remove the line when quantity is zero", func(t *testing.T) {
		f := newFixture()
		f.addToCart(t, "user-1", "p1", 2, 10.00)
		h := commands.NewUpdateCartItemQuantityCommandHandler(f.carts, f.locker, f.cache, f.logger)
		cmd, _ := commands.NewUpdateCartItemQuantityCommand("user-1", "p1", 0)

		c, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
		assert.InDelta(t, 0.00, c.TotalAmount(), 0.001)
	})

	t.Run("should return not found for a product not in the cart", func(t *testing.T) {
		f := newFixture()
		f.addToCart(t, "user-1", "p1", 2, 10.00)
		h := commands.NewUpdateCartItemQuantityCommandHandler(f.carts, f.locker, f.cache, f.logger)
		cmd, _ := commands.NewUpdateCartItemQuantityCommand("user-1", "p2", 1)

		_, err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestClearCartCommandHandler(t *testing.T) {
	t.Run("should empty the cart and keep it", func(t *testing.T) {
		f := newFixture()
		before := f.addToCart(t, "user-1", "p1", 2, 10.00)
		h := commands.NewClearCartCommandHandler(f.carts, f.locker, f.cache, f.logger)
		cmd, _ := commands.NewClearCartCommand("user-1")

		c, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
		assert.True(t, before.ID().IsEqual(c.ID()))
		stored, err := f.cartRepo().GetByUserID(t.Context(), "user-1")
		require.NoError(t, err)
		assert.True(t, stored.IsEmpty())
	})

	t.Run("should create an empty cart for a new user", func(t *testing.T) {
		f := newFixture()
		h := commands.NewClearCartCommandHandler(f.carts, f.locker, f.cache, f.logger)
		cmd, _ := commands.NewClearCartCommand("user-1")

		c, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
		_, err = f.cartRepo().GetByUserID(t.Context(), "user-1")
		require.NoError(t, err)
	})
}

func TestDeleteCartCommandHandler(t *testing.T) {
	t.Run("should delete the cart", func(t *testing.T) {
		f := newFixture()
		f.addToCart(t, "user-1", "p1", 2, 10.00)
		h := commands.NewDeleteCartCommandHandler(f.carts, f.locker, f.cache, f.logger)
		cmd, _ := commands.NewDeleteCartCommand("user-1")

		err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		_, err = f.cartRepo().GetByUserID(t.Context(), "user-1")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should return not found when the user has no cart", func(t *testing.T) {
		f := newFixture()
		h := commands.NewDeleteCartCommandHandler(f.carts, f.locker, f.cache, f.logger)
		cmd, _ := commands.NewDeleteCartCommand("user-1")

		err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

type MockCartUoW struct{ mock.Mock }

func (m *MockCartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

func TestAddToCartCommandHandler_TransactionErrors(t *testing.T) {
	item, _ := commands.NewItemInput("p1", "Mug", "MUG-1", 1, 5)
	cmd, _ := commands.NewAddToCartCommand("user-1", item)

	t.Run("should stop when begin fails", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		uow := new(MockCartUoW)
		factory := new(MockCartUoWFactory)
		cache := new(MockCartCache)
		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
		)

		h := commands.NewAddToCartCommandHandler(factory, f.locker, cache, f.logger)
		_, err := h.Handle(ctx, cmd)

		require.EqualError(t, err, "begin error")
		uow.AssertExpectations(t)
		factory.AssertExpectations(t)
		cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("should roll back and keep the cache when commit fails", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		uow := new(MockCartUoW)
		factory := new(MockCartUoWFactory)
		cache := new(MockCartCache)
		repo := f.cartRepo()
		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CartRepository").Return(repo).Once(),
			uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewAddToCartCommandHandler(factory, f.locker, cache, f.logger)
		_, err := h.Handle(ctx, cmd)

		require.EqualError(t, err, "commit error")
		uow.AssertExpectations(t)
		cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestExpireCartsCommandHandler(t *testing.T) {
	t.Run("should require a cutoff", func(t *testing.T) {
		_, err := commands.NewExpireCartsCommand(time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should delete only carts untouched since the cutoff", func(t *testing.T) {
		// Given
		f := newFixture()
		f.addToCart(t, "stale", "p1", 1, 1.00)
		cutoff := time.Now().UTC().Add(time.Millisecond)
		time.Sleep(2 * time.Millisecond)
		f.addToCart(t, "fresh", "p1", 1, 1.00)
		h := commands.NewExpireCartsCommandHandler(f.carts, f.locker, f.cache, f.logger)
		cmd, err := commands.NewExpireCartsCommand(cutoff)
		require.NoError(t, err)

		// When
		expired, err := h.Handle(t.Context(), cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 1, expired)
		_, err = f.cartRepo().GetByUserID(t.Context(), "stale")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		_, err = f.cartRepo().GetByUserID(t.Context(), "fresh")
		require.NoError(t, err)
	})
}
