package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"restaurantbooking/internal/domain"
)

// Worker consumes reservation.created events and sends the staff and
// customer emails for each one.
type Worker struct {
	url    string
	emails domain.EmailService
	logger *slog.Logger
}

func NewWorker(url string, emails domain.EmailService, logger *slog.Logger) *Worker {
	return &Worker{url: url, emails: emails, logger: logger}
}

// Run connects to the broker and consumes until ctx is cancelled. It
// reconnects with capped exponential backoff; individual message failures
// are logged and the message is dropped (email delivery is best-effort,
// redelivery would only re-notify).
func (w *Worker) Run(ctx context.Context) {
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return
		}
		conn, err := amqp.Dial(w.url)
		if err != nil {
			w.logger.Error("notify worker: broker dial failed", "err", err, "retry_in", backoff)
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := w.consume(ctx, conn); err != nil {
			w.logger.Error("notify worker: consume loop ended", "err", err)
		}
		_ = conn.Close()
	}
}

func (w *Worker) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(reservationQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(reservationQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			if err := w.handle(ctx, d.Body); err != nil {
				w.logger.Error("notify worker: handle message failed", "err", err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *Worker) handle(ctx context.Context, body []byte) error {
	var event domain.ReservationCreatedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}
	w.emails.SendReservationAlerts(ctx, EmailData(&event))
	return nil
}
