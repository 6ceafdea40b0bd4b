// SPDX-License-Identifier: GPL-3.0-only

// Package events publishes lifecycle events to a RabbitMQ topic exchange.
// Publishing is best-effort and optional: when AMQP_URL is unset the
// publisher is disabled and every Publish is a no-op, so the server runs
// without a broker.
package events

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"linklet-server/commons"

	amqp "github.com/rabbitmq/amqp091-go"
)

const ExchangeName = "linklet.events"

type Publisher struct {
	url     string
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

var (
	defaultPublisher *Publisher
	defaultOnce      sync.Once
)

// DefaultPublisher returns the process-wide publisher configured from
// AMQP_URL. Returns nil when no broker is configured.
func DefaultPublisher() *Publisher {
	defaultOnce.Do(func() {
		url := commons.GetEnv("AMQP_URL")
		if url == "" {
			commons.Logger.Debug("AMQP_URL not set, event publishing disabled")
			return
		}
		defaultPublisher = &Publisher{url: url}
	})
	return defaultPublisher
}

func (p *Publisher) ensureChannel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil && !p.conn.IsClosed() {
		return p.channel, nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	p.conn = conn
	p.channel = channel
	return channel, nil
}

// Publish sends an event with the given routing key. A nil receiver is
// valid and does nothing, so call sites never need to branch on whether
// the broker is configured.
func (p *Publisher) Publish(routingKey string, userID uint, data map[string]any) error {
	if p == nil {
		return nil
	}

	event := Event{
		RoutingKey: routingKey,
		UserID:     userID,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	channel, err := p.ensureChannel()
	if err != nil {
		return err
	}

	err = channel.Publish(ExchangeName, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	commons.Logger.Debugf("Published event %s for user %d", routingKey, userID)
	return nil
}

// Close tears down the AMQP connection. Safe on a nil or unconnected
// publisher.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
	}
}
