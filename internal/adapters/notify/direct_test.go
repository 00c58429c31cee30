package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"restaurantbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmailService struct {
	mu   sync.Mutex
	sent []*domain.ReservationEmailData
	done chan struct{}
}

func (f *fakeEmailService) SendReservationAlerts(_ context.Context, data *domain.ReservationEmailData) domain.NotificationResult {
	f.mu.Lock()
	f.sent = append(f.sent, data)
	f.mu.Unlock()
	close(f.done)
	return domain.NotificationResult{StaffDelivered: true, CustomerDelivered: true}
}

func testEvent() *domain.ReservationCreatedEvent {
	return &domain.ReservationCreatedEvent{
		ReservationID: "res-1",
		Reference:     "ref-1",
		Slot:          domain.Slot{Date: "2025-11-25", Time: "19:00"},
		Guests:        4,
		CustomerName:  "Asha Patel",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "+91-9000000001",
		CreatedAt:     time.Now(),
	}
}

func TestDirectDispatcher(t *testing.T) {
	emails := &fakeEmailService{done: make(chan struct{})}
	d := NewDirectDispatcher(emails)

	require.NoError(t, d.Dispatch(context.Background(), testEvent()))

	select {
	case <-emails.done:
	case <-time.After(2 * time.Second):
		t.Fatal("email was never sent")
	}

	emails.mu.Lock()
	defer emails.mu.Unlock()
	require.Len(t, emails.sent, 1)
	assert.Equal(t, "ref-1", emails.sent[0].Reference)
	assert.Equal(t, "November 25, 2025", emails.sent[0].Date)
	assert.Equal(t, "07:00 PM", emails.sent[0].Time)
}

func TestEmailData(t *testing.T) {
	t.Run("formats slot for display", func(t *testing.T) {
		data := EmailData(testEvent())
		assert.Equal(t, "November 25, 2025", data.Date)
		assert.Equal(t, "07:00 PM", data.Time)
		assert.Equal(t, 4, data.Guests)
		assert.Equal(t, "Asha Patel", data.CustomerName)
	})

	t.Run("keeps unparseable values as-is", func(t *testing.T) {
		event := testEvent()
		event.Slot = domain.Slot{Date: "someday", Time: "evening"}
		data := EmailData(event)
		assert.Equal(t, "someday", data.Date)
		assert.Equal(t, "evening", data.Time)
	})
}
