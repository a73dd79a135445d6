// Package rabbitmq owns the broker connection shared by the payment consumer
// and the order event publisher. Each of them gets its own channel on that
// connection, so a channel exception raised by one leaves the other running.
package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Client struct {
	conn    *amqp.Connection
	publish *amqp.Channel
	consume *amqp.Channel
}

func Dial(url string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	c := &Client{conn: conn}
	if c.publish, err = conn.Channel(); err != nil {
		c.Close()
		return nil, fmt.Errorf("open publish channel: %w", err)
	}
	if c.consume, err = conn.Channel(); err != nil {
		c.Close()
		return nil, fmt.Errorf("open consume channel: %w", err)
	}
	return c, nil
}

// PublishChannel carries outgoing order events.
func (c *Client) PublishChannel() *amqp.Channel { return c.publish }

// ConsumeChannel carries the payment deliveries and their acks. The prefetch
// limit from Declare applies to it alone.
func (c *Client) ConsumeChannel() *amqp.Channel { return c.consume }

func (c *Client) Close() {
	if c == nil {
		return
	}
	for _, ch := range []*amqp.Channel{c.consume, c.publish} {
		if ch != nil {
			_ = ch.Close()
		}
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Topology names the exchange order events go to and the queue payment
// events arrive on.
type Topology struct {
	EventsExchange string
	PaymentQueue   string
	Prefetch       int
}

// Declare creates the exchange and queue if missing and sets the consumer
// prefetch. It is idempotent.
func (c *Client) Declare(t Topology) error {
	if err := c.publish.ExchangeDeclare(t.EventsExchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", t.EventsExchange, err)
	}
	if _, err := c.consume.QueueDeclare(t.PaymentQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", t.PaymentQueue, err)
	}
	if t.Prefetch > 0 {
		if err := c.consume.Qos(t.Prefetch, 0, false); err != nil {
			return fmt.Errorf("set prefetch: %w", err)
		}
	}
	return nil
}
