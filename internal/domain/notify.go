package domain

import (
	"context"
	"time"
)

// ReservationCreatedEvent is dispatched after a reservation commit. It
// carries enough information for downstream consumers to send emails
// without querying the primary store.
type ReservationCreatedEvent struct {
	ReservationID string    `json:"reservation_id"`
	Reference     string    `json:"reference"`
	Slot          Slot      `json:"slot"`
	Guests        int       `json:"guests"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	CreatedAt     time.Time `json:"created_at"`
}

// NotificationDispatcher hands a committed reservation off for delivery.
// Dispatch runs after the commit completes; a failure here must never
// revert the reservation, so callers only log the returned error.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, event *ReservationCreatedEvent) error
}
