package notify

import (
	"context"
	"time"

	"restaurantbooking/internal/domain"
)

type directDispatcher struct {
	emails domain.EmailService
}

// NewDirectDispatcher returns a NotificationDispatcher that sends the
// emails in-process, in a background goroutine. Used when no broker is
// configured; the caller's request does not wait on email delivery.
func NewDirectDispatcher(emails domain.EmailService) domain.NotificationDispatcher {
	return &directDispatcher{emails: emails}
}

func (d *directDispatcher) Dispatch(ctx context.Context, event *domain.ReservationCreatedEvent) error {
	data := EmailData(event)
	// Detached from the request context: the reservation is already
	// committed, so delivery continues even if the request ends.
	go d.emails.SendReservationAlerts(context.WithoutCancel(ctx), data)
	return nil
}

// EmailData converts a reservation event into the template data for the
// notification emails, formatting the slot for display (e.g.
// "November 25, 2025" and "07:00 PM").
func EmailData(event *domain.ReservationCreatedEvent) *domain.ReservationEmailData {
	data := &domain.ReservationEmailData{
		Reference:     event.Reference,
		CustomerName:  event.CustomerName,
		CustomerEmail: event.CustomerEmail,
		CustomerPhone: event.CustomerPhone,
		Date:          event.Slot.Date,
		Time:          event.Slot.Time,
		Guests:        event.Guests,
	}
	if t, err := time.Parse(domain.SlotDateLayout, event.Slot.Date); err == nil {
		data.Date = t.Format("January 2, 2006")
	}
	if t, err := time.Parse(domain.SlotTimeLayout, event.Slot.Time); err == nil {
		data.Time = t.Format("03:04 PM")
	}
	return data
}
