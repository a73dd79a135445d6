package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quickbite/internal/core/ports"

	amqp091 "github.com/rabbitmq/amqp091-go"
)

// Publisher is the part of *amqp091.Channel the event publisher needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// RoutingKeyPrefix is followed by the new order status, for example
// order.status.READY_FOR_PICKUP.
const RoutingKeyPrefix = "order.status."

// OrderStatusChangedMessage is the JSON body of an order status event.
type OrderStatusChangedMessage struct {
	OrderID      string    `json:"order_id"`
	OrderCode    string    `json:"order_code"`
	RestaurantID string    `json:"restaurant_id"`
	CustomerID   string    `json:"customer_id"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	DeliveryID   *string   `json:"delivery_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// OrderEventPublisher implements ports.EventPublisher on a topic exchange.
type OrderEventPublisher struct {
	ch       Publisher
	exchange string
}

var _ ports.EventPublisher = (*OrderEventPublisher)(nil)

func NewOrderEventPublisher(ch Publisher, exchange string) *OrderEventPublisher {
	return &OrderEventPublisher{ch: ch, exchange: exchange}
}

func (p *OrderEventPublisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	msg := OrderStatusChangedMessage{
		OrderID:      event.OrderID.String(),
		OrderCode:    event.OrderCode,
		RestaurantID: event.RestaurantID.String(),
		CustomerID:   event.CustomerID.String(),
		From:         event.From.String(),
		To:           event.To.String(),
		OccurredAt:   event.OccurredAt.UTC(),
	}
	if event.DeliveryID != nil {
		id := event.DeliveryID.String()
		msg.DeliveryID = &id
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal order status event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, RoutingKeyPrefix+event.To.String(), false, false, amqp091.Publishing{
		DeliveryMode: amqp091.Persistent,
		ContentType:  "application/json",
		MessageId:    event.OrderID.String() + ":" + event.To.String(),
		Timestamp:    msg.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", RoutingKeyPrefix+event.To.String(), err)
	}
	return nil
}
