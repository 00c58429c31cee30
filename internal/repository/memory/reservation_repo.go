// Package memory provides in-process implementations of the storage
// interfaces. It backs the development mode (STORE=memory) and the
// concurrency tests; data does not survive a restart.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"restaurantbooking/internal/domain"
)

// ReservationRepository keeps reservations in memory with one mutex per
// slot, so concurrent admissions contend only when they target the same
// (date, time) key.
type ReservationRepository struct {
	mu    sync.Mutex // guards slots and byID
	slots map[domain.Slot]*slotState
	byID  map[string]*domain.Reservation

	customers domain.CustomerRepository
	nextID    atomic.Int64
}

type slotState struct {
	mu           sync.Mutex
	reservations []*domain.Reservation
}

// NewReservationRepository returns an empty in-memory reservation store.
// customers is used to join customer rows in ListBySlot and may be nil
// when listings are not needed.
func NewReservationRepository(customers domain.CustomerRepository) *ReservationRepository {
	return &ReservationRepository{
		slots:     make(map[domain.Slot]*slotState),
		byID:      make(map[string]*domain.Reservation),
		customers: customers,
	}
}

func (r *ReservationRepository) slot(slot domain.Slot) *slotState {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.slots[slot]
	if !ok {
		st = &slotState{}
		r.slots[slot] = st
	}
	return st
}

// totalLocked sums guest counts live from the reservation rows; the total
// is derived, never cached. Caller must hold st.mu.
func (st *slotState) totalLocked() int {
	total := 0
	for _, res := range st.reservations {
		total += res.Guests
	}
	return total
}

func (r *ReservationRepository) TotalBooked(ctx context.Context, slot domain.Slot) (int, error) {
	st := r.slot(slot)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.totalLocked(), nil
}

func (r *ReservationRepository) CommitInSlot(ctx context.Context, slot domain.Slot, admit domain.AdmitFunc) (*domain.Reservation, error) {
	st := r.slot(slot)
	st.mu.Lock()
	defer st.mu.Unlock()

	res, err := admit(st.totalLocked())
	if err != nil {
		return nil, err
	}

	res.ID = strconv.FormatInt(r.nextID.Add(1), 10)
	res.Slot = slot
	stored := *res
	st.reservations = append(st.reservations, &stored)

	r.mu.Lock()
	r.byID[res.ID] = &stored
	r.mu.Unlock()
	return res, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	r.mu.Lock()
	res, ok := r.byID[id]
	r.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *ReservationRepository) ListBySlot(ctx context.Context, slot domain.Slot, p domain.PaginationParams) ([]*domain.ReservationWithCustomer, int, error) {
	st := r.slot(slot)
	st.mu.Lock()
	all := make([]*domain.Reservation, len(st.reservations))
	copy(all, st.reservations)
	st.mu.Unlock()

	// Newest first, matching the SQL store's ordering.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.PageSize
	if p.PageSize <= 0 || end > total {
		end = total
	}

	items := []*domain.ReservationWithCustomer{}
	for _, res := range all[start:end] {
		copied := *res
		var cust *domain.Customer
		if r.customers != nil {
			cust, _ = r.customers.GetByID(ctx, res.CustomerID)
		}
		items = append(items, &domain.ReservationWithCustomer{Reservation: &copied, Customer: cust})
	}
	return items, total, nil
}

func (r *ReservationRepository) Confirm(ctx context.Context, id string) (*domain.Reservation, error) {
	r.mu.Lock()
	res, ok := r.byID[id]
	if ok {
		res.Confirmed = true
	}
	r.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *res
	return &copied, nil
}
