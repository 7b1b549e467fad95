// Package kafka publishes order events to Kafka topics.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
)

// EventTypeOrderStatusChanged is the value of the event_type header.
const EventTypeOrderStatusChanged = "OrderStatusChanged"

// messageWriter is the part of *kafkago.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// OrderEventPublisher implements ports.OrderEventPublisher. Messages are keyed by
// order ID so every event of one order lands on the same partition, in order.
type OrderEventPublisher struct {
	writer messageWriter
}

// NewOrderEventPublisher creates a publisher writing to topic on brokers.
func NewOrderEventPublisher(topic string, brokers ...string) *OrderEventPublisher {
	return newOrderEventPublisher(&kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		AllowAutoTopicCreation: true,
	})
}

func newOrderEventPublisher(writer messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

type statusChangedPayload struct {
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	From       string    `json:"from_status"`
	To         string    `json:"to_status"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PublishStatusChanged writes one message for event.
func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	payload, err := json.Marshal(statusChangedPayload{
		OrderID:    event.OrderID.String(),
		UserID:     event.UserID,
		From:       event.From.String(),
		To:         event.To.String(),
		Reason:     event.Reason,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("marshal order event failed: %w", err)
	}

	msg := kafkago.Message{
		Key:   []byte(event.OrderID.String()),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(EventTypeOrderStatusChanged)},
		},
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write failed: %w", err)
	}
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
