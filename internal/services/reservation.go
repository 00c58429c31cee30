package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"restaurantbooking/internal/domain"
)

// DefaultMaxCapacity is the per-slot guest budget used when the
// configuration does not override it.
const DefaultMaxCapacity = 45

type reservationService struct {
	reservations domain.ReservationRepository
	customers    domain.CustomerRepository
	dispatcher   domain.NotificationDispatcher
	logger       *slog.Logger
	maxCapacity  int
}

// NewReservationService creates a ReservationService enforcing the given
// per-slot capacity. A maxCapacity <= 0 falls back to DefaultMaxCapacity.
// dispatcher may be nil, in which case no notifications are sent.
func NewReservationService(
	reservations domain.ReservationRepository,
	customers domain.CustomerRepository,
	dispatcher domain.NotificationDispatcher,
	logger *slog.Logger,
	maxCapacity int,
) domain.ReservationService {
	if maxCapacity <= 0 {
		maxCapacity = DefaultMaxCapacity
	}
	return &reservationService{
		reservations: reservations,
		customers:    customers,
		dispatcher:   dispatcher,
		logger:       logger,
		maxCapacity:  maxCapacity,
	}
}

// decide is the admission policy. Given the guests already committed to
// the slot, it either returns the capacity that would remain after
// accepting the request, or a *domain.CapacityError rejection.
func (s *reservationService) decide(totalBooked, guests int) (int, error) {
	if guests > s.maxCapacity {
		return 0, &domain.CapacityError{
			Reason:  domain.ReasonOverPartySize,
			Message: fmt.Sprintf("Maximum %d guests allowed per reservation.", s.maxCapacity),
		}
	}
	remaining := s.maxCapacity - totalBooked
	if guests > remaining {
		if remaining > 0 {
			return 0, &domain.CapacityError{
				Reason:    domain.ReasonInsufficientCapacity,
				Remaining: remaining,
				Message:   fmt.Sprintf("Only %d seats remaining for this time slot. Please choose another time or reduce the number of guests.", remaining),
			}
		}
		return 0, &domain.CapacityError{
			Reason:  domain.ReasonSlotFull,
			Message: "This time slot is fully booked. Please choose another time.",
		}
	}
	return remaining - guests, nil
}

func invalidPartySize() *domain.CapacityError {
	return &domain.CapacityError{
		Reason:  domain.ReasonInvalidPartySize,
		Message: "Number of guests must be at least 1.",
	}
}

func (s *reservationService) CheckAvailability(ctx context.Context, slot domain.Slot, guests int) (*domain.Availability, error) {
	// Party size is validated before any capacity read.
	if guests < 1 {
		return nil, invalidPartySize()
	}
	if guests > s.maxCapacity {
		return &domain.Availability{
			Available: false,
			Message:   fmt.Sprintf("Maximum %d guests allowed per reservation.", s.maxCapacity),
		}, nil
	}

	booked, err := s.reservations.TotalBooked(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("total booked: %w", err)
	}
	remaining := s.maxCapacity - booked
	if remaining < 0 {
		remaining = 0
	}

	if guests > remaining {
		if remaining > 0 {
			return &domain.Availability{
				Available: false,
				Remaining: &remaining,
				Message:   fmt.Sprintf("Only %d seats remaining for this time slot. Please choose another time or reduce guests.", remaining),
			}, nil
		}
		return &domain.Availability{
			Available: false,
			Remaining: &remaining,
			Message:   "This time slot is fully booked. Please choose another time.",
		}, nil
	}
	return &domain.Availability{
		Available: true,
		Remaining: &remaining,
		Message:   fmt.Sprintf("Tables available! %d seats remaining for this time slot.", remaining),
	}, nil
}

func (s *reservationService) Submit(ctx context.Context, req *domain.BookingRequest) (*domain.BookingResult, error) {
	if req.Guests < 1 {
		return nil, invalidPartySize()
	}

	// Resolve-or-create the customer. The upsert stands even if admission
	// rejects the booking below.
	now := time.Now()
	customer := domain.NewCustomer(strings.TrimSpace(req.Name), strings.TrimSpace(strings.ToLower(req.Email)), strings.TrimSpace(req.Phone), now, now)
	if err := s.customers.UpsertByEmail(ctx, customer); err != nil {
		return nil, fmt.Errorf("upsert customer: %w", err)
	}

	// The decision and the commit run as one atomic unit per slot: the
	// repository holds the slot while admit executes, so two concurrent
	// submissions cannot both read the same total and oversubscribe.
	var remainingAfter int
	res, err := s.reservations.CommitInSlot(ctx, req.Slot, func(totalBooked int) (*domain.Reservation, error) {
		after, err := s.decide(totalBooked, req.Guests)
		if err != nil {
			return nil, err
		}
		remainingAfter = after
		return &domain.Reservation{
			Reference:  uuid.NewString(),
			CustomerID: customer.ID,
			Slot:       req.Slot,
			Guests:     req.Guests,
			CreatedAt:  time.Now(),
		}, nil
	})
	if err != nil {
		var capErr *domain.CapacityError
		if errors.As(err, &capErr) {
			// Terminal rejection for this attempt; no retry at this layer.
			return nil, err
		}
		return nil, fmt.Errorf("commit reservation: %w", err)
	}

	s.logger.InfoContext(ctx, "reservation committed",
		"reservation_id", res.ID,
		"slot", req.Slot.String(),
		"guests", req.Guests,
		"remaining_after", remainingAfter,
	)

	// Notification is fire-and-forget relative to admission: a dispatch
	// failure is logged and the committed reservation stands.
	if s.dispatcher != nil {
		event := &domain.ReservationCreatedEvent{
			ReservationID: res.ID,
			Reference:     res.Reference,
			Slot:          res.Slot,
			Guests:        res.Guests,
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
			CustomerPhone: customer.Phone,
			CreatedAt:     res.CreatedAt,
		}
		if err := s.dispatcher.Dispatch(ctx, event); err != nil {
			s.logger.ErrorContext(ctx, "failed to dispatch reservation notification",
				"reservation_id", res.ID, "err", err)
		}
	}

	return &domain.BookingResult{
		Reservation:    res,
		Customer:       customer,
		RemainingAfter: remainingAfter,
	}, nil
}

func (s *reservationService) ListBySlot(ctx context.Context, slot domain.Slot, p domain.PaginationParams) (*domain.SlotReservations, error) {
	items, total, err := s.reservations.ListBySlot(ctx, slot, p)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	if items == nil {
		items = []*domain.ReservationWithCustomer{}
	}
	guests, err := s.reservations.TotalBooked(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("total booked: %w", err)
	}
	return &domain.SlotReservations{
		Reservations: items,
		TotalCount:   total,
		TotalGuests:  guests,
	}, nil
}

func (s *reservationService) Confirm(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := s.reservations.Confirm(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("confirm reservation: %w", err)
	}
	return res, nil
}
