package domain

import (
	"context"
	"fmt"
	"time"
)

// RejectionReason classifies why an admission attempt was rejected.
type RejectionReason string

const (
	ReasonInvalidPartySize     RejectionReason = "invalid_party_size"
	ReasonOverPartySize        RejectionReason = "over_party_size"
	ReasonInsufficientCapacity RejectionReason = "insufficient_capacity"
	ReasonSlotFull             RejectionReason = "slot_full"
)

// CapacityError is a terminal admission rejection. It is distinct from
// infrastructure failures so callers can tell "slot is full" apart from
// "try again later". Remaining is only meaningful for
// ReasonInsufficientCapacity.
type CapacityError struct {
	Reason    RejectionReason
	Message   string
	Remaining int
}

func (e *CapacityError) Error() string { return e.Message }

// Slot identifies one seating period: a calendar date plus a wall-clock
// time of day. Both are stored exactly as given; no timezone conversion
// is performed anywhere in the system.
type Slot struct {
	Date string `json:"date"` // 2006-01-02
	Time string `json:"time"` // 15:04
}

const (
	SlotDateLayout = "2006-01-02"
	SlotTimeLayout = "15:04"
)

// NewSlot validates the date and time formats and returns a Slot.
// Seconds on the time are accepted and truncated to minute precision.
func NewSlot(date, timeOfDay string) (Slot, error) {
	if _, err := time.Parse(SlotDateLayout, date); err != nil {
		return Slot{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}
	if t, err := time.Parse("15:04:05", timeOfDay); err == nil {
		timeOfDay = t.Format(SlotTimeLayout)
	} else if _, err := time.Parse(SlotTimeLayout, timeOfDay); err != nil {
		return Slot{}, fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}
	return Slot{Date: date, Time: timeOfDay}, nil
}

func (s Slot) String() string { return s.Date + " " + s.Time }

// Reservation represents one booked table reservation. Reservations are
// created only through a successful admission; they are never resized or
// moved to another slot. Multiple reservations may share a slot.
// swagger:model Reservation
type Reservation struct {
	ID         string    `json:"id"`
	Reference  string    `json:"reference"`
	CustomerID string    `json:"customer_id"`
	Slot       Slot      `json:"slot"`
	Guests     int       `json:"guests"`
	Confirmed  bool      `json:"confirmed"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReservationWithCustomer bundles a reservation with the customer who made it.
type ReservationWithCustomer struct {
	Reservation *Reservation `json:"reservation"`
	Customer    *Customer    `json:"customer"`
}

// AdmitFunc inspects the number of guests already committed to a slot and
// either returns a reservation to commit or a rejection error. It runs
// while the slot is exclusively held, so the total cannot change between
// the read and the commit.
type AdmitFunc func(totalBooked int) (*Reservation, error)

// ReservationRepository is the capacity ledger: it answers how many guests
// are already booked per slot and appends reservation rows.
type ReservationRepository interface {
	// TotalBooked returns the sum of guests across all reservations in the
	// slot, confirmed or not. A slot with no reservations yields 0.
	TotalBooked(ctx context.Context, slot Slot) (int, error)

	// CommitInSlot runs admit with the slot exclusively held and, when admit
	// returns a reservation, inserts it within the same critical section.
	// Admission attempts on other slots are never blocked. A rejection error
	// from admit is returned unchanged and nothing is written.
	CommitInSlot(ctx context.Context, slot Slot, admit AdmitFunc) (*Reservation, error)

	GetByID(ctx context.Context, id string) (*Reservation, error)
	ListBySlot(ctx context.Context, slot Slot, p PaginationParams) ([]*ReservationWithCustomer, int, error)

	// Confirm marks the reservation as confirmed by staff. Confirmation is
	// bookkeeping only; it does not change the slot's booked total.
	Confirm(ctx context.Context, id string) (*Reservation, error)
}

// Availability is the result of a read-only capacity probe.
// Remaining is nil when the request can never fit (over party size).
// swagger:model Availability
type Availability struct {
	Available bool   `json:"available"`
	Remaining *int   `json:"remaining_capacity"`
	Message   string `json:"message"`
}

// BookingRequest carries a validated reservation submission.
type BookingRequest struct {
	Name   string
	Email  string
	Phone  string
	Slot   Slot
	Guests int
}

// BookingResult is returned on a successful submission.
type BookingResult struct {
	Reservation    *Reservation
	Customer       *Customer
	RemainingAfter int
}

// SlotReservations is a staff-facing view of one slot's bookings.
type SlotReservations struct {
	Reservations []*ReservationWithCustomer
	TotalCount   int
	TotalGuests  int
}

// ReservationService is the single policy gate all booking traffic passes
// through: availability probes, admission, and staff operations.
type ReservationService interface {
	// CheckAvailability never mutates the ledger.
	CheckAvailability(ctx context.Context, slot Slot, guests int) (*Availability, error)

	// Submit resolves the customer by email, runs the admission decision
	// atomically against the slot, commits on accept, and dispatches
	// notifications best-effort. A *CapacityError is returned on rejection.
	Submit(ctx context.Context, req *BookingRequest) (*BookingResult, error)

	ListBySlot(ctx context.Context, slot Slot, p PaginationParams) (*SlotReservations, error)
	Confirm(ctx context.Context, id string) (*Reservation, error)
}
