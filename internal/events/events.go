// Package events publishes domain events to a RabbitMQ topic exchange.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	OrderCreated  = "order.created"
	VisitCreated  = "visit.created"
	RewardClaimed = "reward.claimed"
	RewardUndone  = "reward.undone"
)

type Config struct {
	URL            string        `mapstructure:"url"`
	Exchange       string        `mapstructure:"exchange"`
	PublishTimeout time.Duration `mapstructure:"publish_timeout"`
}

// Envelope wraps every published payload.
type Envelope struct {
	Id         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data"`
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	mu       sync.Mutex
	exchange string
	timeout  time.Duration
	now      func() time.Time
}

// New dials the broker and declares the exchange. With an empty URL it
// returns a publisher that drops every event.
func New(c *Config) (*Publisher, error) {
	if c.URL == "" {
		return &Publisher{}, nil
	}
	if c.Exchange == "" {
		c.Exchange = "salesaice.events"
	}

	conn, err := amqp.Dial(c.URL)
	if err != nil {
		return nil, fmt.Errorf("can't connect to rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("can't open channel: %w", err)
	}
	err = ch.ExchangeDeclare(
		c.Exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("can't declare exchange %s: %w", c.Exchange, err)
	}

	return newPublisher(conn, ch, c), nil
}

func newPublisher(conn *amqp.Connection, ch channel, c *Config) *Publisher {
	timeout := c.PublishTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Publisher{
		conn:     conn,
		ch:       ch,
		exchange: c.Exchange,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Enabled reports whether events reach a broker.
func (p *Publisher) Enabled() bool {
	return p.ch != nil
}

func (p *Publisher) envelope(routingKey string, payload any) (*Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("can't marshal %s payload: %w", routingKey, err)
	}
	return &Envelope{
		Id:         uuid.NewString(),
		Type:       routingKey,
		OccurredAt: p.now().UTC(),
		Data:       data,
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, payload any) error {
	if !p.Enabled() {
		return nil
	}

	env, err := p.envelope(routingKey, payload)
	if err != nil {
		return err
	}
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("can't marshal envelope: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    env.Id,
			Timestamp:    env.OccurredAt,
			Type:         routingKey,
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("can't publish %s: %w", routingKey, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if !p.Enabled() {
		return nil
	}
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
