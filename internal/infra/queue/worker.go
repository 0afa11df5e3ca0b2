package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xavierca1/site-forms/internal/entity"
)

// Deliverer sends a notification through a real mail channel.
type Deliverer interface {
	Send(ctx context.Context, n entity.Notification) error
	Name() string
}

// Relay drains the notification queue into a Deliverer. Each message gets one
// delivery attempt; failures are dead-lettered, never requeued.
type Relay struct {
	Channel   *amqp.Channel
	Deliverer Deliverer
	Logger    *zap.Logger
}

func NewRelay(ch *amqp.Channel, deliverer Deliverer, logger *zap.Logger) *Relay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Relay{Channel: ch, Deliverer: deliverer, Logger: logger}
}

// Start consumes queueName until ctx is done or the delivery channel closes.
func (r *Relay) Start(ctx context.Context, queueName string) error {
	msgs, err := r.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register RabbitMQ consumer: %w", err)
	}

	r.Logger.Info("relay waiting for notifications", zap.String("queue", queueName))
	r.Drain(ctx, msgs)
	return nil
}

func (r *Relay) Drain(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-msgs:
			if !ok {
				r.Logger.Warn("delivery channel closed")
				return
			}
			r.handle(ctx, d)
		}
	}
}

func (r *Relay) handle(ctx context.Context, d amqp.Delivery) {
	var n entity.Notification
	if err := json.Unmarshal(d.Body, &n); err != nil {
		r.Logger.Error("malformed notification", zap.Error(err))
		d.Nack(false, false)
		return
	}

	if err := r.Deliverer.Send(ctx, n); err != nil {
		r.Logger.Error("relay delivery failed",
			zap.String("notification_id", n.ID),
			zap.String("channel", r.Deliverer.Name()),
			zap.Error(err),
		)
		d.Nack(false, false)
		return
	}

	r.Logger.Info("notification relayed",
		zap.String("notification_id", n.ID),
		zap.String("channel", r.Deliverer.Name()),
	)
	d.Ack(false)
}
