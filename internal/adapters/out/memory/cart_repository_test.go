package memory_test

import (
	"testing"
	"time"

	"storefront/internal/adapters/out/memory"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository(t *testing.T) {
	t.Run("save and get return independent copies", func(t *testing.T) {
		ctx := t.Context()
		repo := memory.NewCartRepository(memory.NewStore())
		c := newCart(t, "user-1")
		require.NoError(t, repo.Save(ctx, c))

		c.Clear()
		loaded, err := repo.Get(ctx, c.ID())
		require.NoError(t, err)
		assert.Equal(t, 2, loaded.ItemCount())

		loaded.Clear()
		again, err := repo.GetByUserID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 25.00, again.TotalAmount())
	})

	t.Run("get unknown cart is not found", func(t *testing.T) {
		ctx := t.Context()
		repo := memory.NewCartRepository(memory.NewStore())

		_, err := repo.Get(ctx, kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		_, err = repo.GetByUserID(ctx, "nobody")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("delete maintains the user index", func(t *testing.T) {
		ctx := t.Context()
		repo := memory.NewCartRepository(memory.NewStore())
		first := newCart(t, "user-1")
		second := newCart(t, "user-2")
		require.NoError(t, repo.Save(ctx, first))
		require.NoError(t, repo.Save(ctx, second))

		require.NoError(t, repo.Delete(ctx, first.ID()))
		require.NoError(t, repo.DeleteByUserID(ctx, "user-2"))

		_, err := repo.GetByUserID(ctx, "user-1")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		require.ErrorIs(t, repo.Delete(ctx, first.ID()), errs.ErrObjectNotFound)
		require.ErrorIs(t, repo.DeleteByUserID(ctx, "user-2"), errs.ErrObjectNotFound)
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("new cart for the same user replaces the old one", func(t *testing.T) {
		ctx := t.Context()
		repo := memory.NewCartRepository(memory.NewStore())
		require.NoError(t, repo.Save(ctx, newCart(t, "user-1")))
		replacement := newCart(t, "user-1")

		require.NoError(t, repo.Save(ctx, replacement))

		loaded, err := repo.GetByUserID(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, loaded.IsEqual(replacement))
		count, _ := repo.Count(ctx)
		assert.Equal(t, int64(1), count)
	})

	t.Run("get all pages in creation order", func(t *testing.T) {
		ctx := t.Context()
		repo := memory.NewCartRepository(memory.NewStore())
		for _, user := range []string{"a", "b", "c", "d", "e"} {
			require.NoError(t, repo.Save(ctx, newCart(t, user)))
		}

		all, err := repo.GetAll(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, all, 5)
		for i := 1; i < len(all); i++ {
			assert.False(t, all[i].CreatedAt().Before(all[i-1].CreatedAt()))
		}

		pageTwo, err := repo.GetAll(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, pageTwo, 2)
		assert.True(t, pageTwo[0].IsEqual(all[2]))

		beyond, err := repo.GetAll(ctx, 10, 2)
		require.NoError(t, err)
		assert.Empty(t, beyond)
		none, err := repo.GetAll(ctx, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("get updated before filters stale carts", func(t *testing.T) {
		ctx := t.Context()
		repo := memory.NewCartRepository(memory.NewStore())
		stale := newCart(t, "user-1")
		require.NoError(t, repo.Save(ctx, stale))
		cutoff := time.Now().UTC().Add(time.Millisecond)
		time.Sleep(2 * time.Millisecond)
		require.NoError(t, repo.Save(ctx, newCart(t, "user-2")))

		carts, err := repo.GetUpdatedBefore(ctx, cutoff)
		require.NoError(t, err)
		require.Len(t, carts, 1)
		assert.True(t, carts[0].IsEqual(stale))
	})
}
