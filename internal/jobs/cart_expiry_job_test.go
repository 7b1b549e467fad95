package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartExpirer struct{ mock.Mock }

func (m *MockCartExpirer) Handle(ctx context.Context, cmd commands.ExpireCartsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func TestCartExpiryJob_Run(t *testing.T) {
	t.Run("should expire carts older than max age", func(t *testing.T) {
		// Given
		now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
		handler := new(MockCartExpirer)
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ExpireCartsCommand) bool {
			return cmd.Cutoff().Equal(now.Add(-48 * time.Hour))
		})).Return(3, nil).Once()
		job := newCartExpiryJob(handler, "", 48*time.Hour, slog.New(slog.DiscardHandler))
		job.now = func() time.Time { return now }

		// When
		job.Run(t.Context())

		// Then
		handler.AssertExpectations(t)
	})

	t.Run("should survive handler failures", func(t *testing.T) {
		handler := new(MockCartExpirer)
		handler.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("db down")).Once()
		job := newCartExpiryJob(handler, "", 0, slog.New(slog.DiscardHandler))

		assert.NotPanics(t, func() { job.Run(t.Context()) })
		handler.AssertExpectations(t)
	})
}

func TestNewCartExpiryJob_Defaults(t *testing.T) {
	job := newCartExpiryJob(new(MockCartExpirer), "", 0, slog.New(slog.DiscardHandler))

	assert.Empty(t, job.schedule)
	assert.Equal(t, DefaultCartExpiryAge, job.maxAge)
}

func TestCartExpiryJob_StartStop(t *testing.T) {
	t.Run("should refuse to start without a schedule", func(t *testing.T) {
		handler := new(MockCartExpirer)
		job := newCartExpiryJob(handler, "", time.Hour, slog.New(slog.DiscardHandler))

		require.Error(t, job.Start())
		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job := newCartExpiryJob(new(MockCartExpirer), "not a schedule", time.Hour, slog.New(slog.DiscardHandler))

		require.Error(t, job.Start())
	})

	t.Run("should run on schedule", func(t *testing.T) {
		handler := new(MockCartExpirer)
		ran := make(chan struct{}, 1)
		handler.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Run(func(mock.Arguments) {
			select {
			case ran <- struct{}{}:
			default:
			}
		})
		job := newCartExpiryJob(handler, "* * * * * *", time.Hour, slog.New(slog.DiscardHandler))

		require.NoError(t, job.Start())
		defer job.Stop()

		select {
		case <-ran:
		case <-time.After(3 * time.Second):
			t.Fatal("job did not run")
		}
	})
}
