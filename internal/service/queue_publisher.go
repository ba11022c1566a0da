// Package queue_publisher provides functions to publish domain events to RabbitMQ.
// Errors are logged and returned to allow callers to ignore failures without
// interrupting the main request flow.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/line-echo-relay/internal/queue"
)

// ReplyPublisher publishes reply audit events.  Each publish dials its own
// connection and channel and closes both before returning.
type ReplyPublisher struct {
	url   string
	queue string
}

// NewReplyPublisher returns a publisher for queueName on the broker at url.
func NewReplyPublisher(url, queueName string) *ReplyPublisher {
	if queueName == "" {
		queueName = q.ReplySentQueue
	}
	return &ReplyPublisher{url: url, queue: queueName}
}

// PublishReplySent publishes event as a persistent message.  It never
// panics; any error is logged and returned so the caller can choose to
// ignore it.
func (p *ReplyPublisher) PublishReplySent(ctx context.Context, event q.ReplySentEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// durable, not auto-deleted, not exclusive
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	// default exchange, routing key = queue name
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
