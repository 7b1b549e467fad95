package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct{ mock.Mock }

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	return m.Called().Error(0)
}

func TestOrderEventPublisher_PublishStatusChanged(t *testing.T) {
	t.Run("should write keyed message with payload", func(t *testing.T) {
		// Given
		ctx := t.Context()
		orderID := kernel.NewUUID()
		occurredAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
		event := ports.OrderStatusChanged{
			OrderID:    orderID,
			UserID:     "user-1",
			From:       order.Processing,
			To:         order.OnHold,
			Reason:     "address check",
			OccurredAt: occurredAt,
		}

		var written []kafkago.Message
		writer := new(MockWriter)
		writer.On("WriteMessages", ctx, mock.Anything).
			Run(func(args mock.Arguments) { written = args.Get(1).([]kafkago.Message) }).
			Return(nil).Once()

		// When
		err := newOrderEventPublisher(writer).PublishStatusChanged(ctx, event)

		// Then
		require.NoError(t, err)
		writer.AssertExpectations(t)
		require.Len(t, written, 1)
		assert.Equal(t, orderID.String(), string(written[0].Key))
		require.Len(t, written[0].Headers, 1)
		assert.Equal(t, EventTypeOrderStatusChanged, string(written[0].Headers[0].Value))

		var payload map[string]any
		require.NoError(t, json.Unmarshal(written[0].Value, &payload))
		assert.Equal(t, orderID.String(), payload["order_id"])
		assert.Equal(t, "PROCESSING", payload["from_status"])
		assert.Equal(t, "ON_HOLD", payload["to_status"])
		assert.Equal(t, "address check", payload["reason"])
		assert.Equal(t, "2026-05-01T10:00:00Z", payload["occurred_at"])
	})

	t.Run("should wrap writer errors", func(t *testing.T) {
		ctx := t.Context()
		writer := new(MockWriter)
		writer.On("WriteMessages", ctx, mock.Anything).Return(errors.New("broker down")).Once()

		err := newOrderEventPublisher(writer).PublishStatusChanged(ctx, ports.OrderStatusChanged{OrderID: kernel.NewUUID()})

		require.ErrorContains(t, err, "kafka write failed: broker down")
	})
}

func TestOrderEventPublisher_Close(t *testing.T) {
	writer := new(MockWriter)
	writer.On("Close").Return(nil).Once()

	require.NoError(t, newOrderEventPublisher(writer).Close())
	writer.AssertExpectations(t)
}

func TestNewOrderEventPublisher(t *testing.T) {
	p := NewOrderEventPublisher("orders.status-changed", "localhost:9092")

	w, ok := p.writer.(*kafkago.Writer)
	require.True(t, ok)
	assert.Equal(t, "orders.status-changed", w.Topic)
	assert.True(t, w.AllowAutoTopicCreation)
}
