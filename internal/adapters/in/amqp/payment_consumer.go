// Package amqp receives payment provider events from RabbitMQ and turns a
// successful payment into an order.
package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"quickbite/internal/core/application/usecases/commands"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"

	amqp091 "github.com/rabbitmq/amqp091-go"
)

// PaymentSucceededEvent is the only event type that creates an order.
const PaymentSucceededEvent = "payment_intent.succeeded"

// PaymentEvent is the message body published by the payment provider bridge.
type PaymentEvent struct {
	Event      string `json:"event"`
	CustomerID string `json:"customer_id"`
}

type OrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderFromCartCommand) (*order.Order, error)
}

// Source is the part of *amqp091.Channel the consumer needs.
type Source interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error)
}

// Outcome is what the consumer did with one message.
type Outcome int

const (
	Acked Outcome = iota
	Requeued
)

type PaymentConsumer struct {
	creator OrderCreator
	queue   string
	tag     string
	logger  *slog.Logger
}

func NewPaymentConsumer(creator OrderCreator, queue string, logger *slog.Logger) *PaymentConsumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentConsumer{
		creator: creator,
		queue:   queue,
		tag:     "quickbite-payments",
		logger:  logger.With("component", "payment-consumer", "queue", queue),
	}
}

// Run consumes with manual acknowledgements until ctx is cancelled or the
// broker closes the delivery channel.
func (c *PaymentConsumer) Run(ctx context.Context, source Source) error {
	deliveries, err := source.Consume(c.queue, c.tag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.queue, err)
	}
	c.logger.Info("Payment consumer started")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Payment consumer stopped")
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("payment delivery channel closed")
			}
			c.settle(d, c.Process(ctx, d.Body))
		}
	}
}

func (c *PaymentConsumer) settle(d amqp091.Delivery, outcome Outcome) {
	var err error
	switch outcome {
	case Requeued:
		err = d.Nack(false, true)
	default:
		err = d.Ack(false)
	}
	if err != nil {
		c.logger.Error("Failed to settle payment message", "delivery_tag", d.DeliveryTag, "error", err)
	}
}

// Process handles one message body. Only bodies that cannot name a customer
// are acknowledged and dropped. Every failure to create the order is
// requeued so the payment is never lost.
func (c *PaymentConsumer) Process(ctx context.Context, body []byte) Outcome {
	var event PaymentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.logger.Error("Malformed payment message", "error", err)
		return Acked
	}
	if event.Event != PaymentSucceededEvent {
		c.logger.Debug("Ignoring payment event", "event", event.Event)
		return Acked
	}

	customerID, err := kernel.UUIDFromString(event.CustomerID)
	if err != nil {
		c.logger.Error("Payment message has no usable customer id", "customer_id", event.CustomerID, "error", err)
		return Acked
	}
	cmd, err := commands.NewCreateOrderFromCartCommand(customerID)
	if err != nil {
		c.logger.Error("Payment message rejected", "customer_id", event.CustomerID, "error", err)
		return Acked
	}

	o, err := c.creator.Handle(ctx, cmd)
	if err != nil {
		c.logger.Error("Order creation failed, requeueing payment", "customer_id", event.CustomerID, "error", err)
		return Requeued
	}

	c.logger.Info("Order created from payment", "customer_id", event.CustomerID,
		"order_id", o.ID().String(), "order_code", o.Code())
	return Acked
}
