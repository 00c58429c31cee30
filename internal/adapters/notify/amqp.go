// Package notify delivers post-commit reservation events to the email
// pipeline, either through a RabbitMQ queue or directly in-process.
// Delivery is best-effort by contract: a failure anywhere in this package
// must never unwind a committed reservation.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"restaurantbooking/internal/domain"
)

const reservationQueueName = "reservation.created"

type amqpDispatcher struct {
	url string
}

// NewAMQPDispatcher returns a NotificationDispatcher that publishes
// reservation events to the reservation.created queue. Messages are
// persistent so they survive a broker restart; the consumer (see worker.go)
// turns them into emails.
func NewAMQPDispatcher(url string) domain.NotificationDispatcher {
	return &amqpDispatcher{url: url}
}

func (d *amqpDispatcher) Dispatch(ctx context.Context, event *domain.ReservationCreatedEvent) error {
	conn, err := amqp.Dial(d.url)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("amqp channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(reservationQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("amqp queue declare: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", reservationQueueName, false, false, pub); err != nil {
		return fmt.Errorf("amqp publish: %w", err)
	}
	return nil
}
