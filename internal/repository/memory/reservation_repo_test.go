package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"restaurantbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxCapacity = 45

// admitUpTo mimics the service's admission policy against a fixed budget.
func admitUpTo(guests int) domain.AdmitFunc {
	return func(totalBooked int) (*domain.Reservation, error) {
		if totalBooked+guests > maxCapacity {
			return nil, &domain.CapacityError{
				Reason:  domain.ReasonSlotFull,
				Message: "full",
			}
		}
		return &domain.Reservation{
			Reference: "ref",
			Guests:    guests,
			CreatedAt: time.Now(),
		}, nil
	}
}

func TestReservationRepository_CommitInSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewReservationRepository(nil)
	slot := domain.Slot{Date: "2025-06-01", Time: "19:00"}

	res, err := repo.CommitInSlot(ctx, slot, admitUpTo(10))
	require.NoError(t, err)
	require.NotEmpty(t, res.ID)
	assert.Equal(t, slot, res.Slot)

	total, err := repo.TotalBooked(ctx, slot)
	require.NoError(t, err)
	assert.Equal(t, 10, total)

	// A rejection writes nothing.
	_, err = repo.CommitInSlot(ctx, slot, admitUpTo(40))
	var capErr *domain.CapacityError
	require.ErrorAs(t, err, &capErr)
	total, err = repo.TotalBooked(ctx, slot)
	require.NoError(t, err)
	assert.Equal(t, 10, total)
}

func TestReservationRepository_ConcurrentAdmissions(t *testing.T) {
	ctx := context.Background()
	repo := NewReservationRepository(nil)
	slot := domain.Slot{Date: "2025-06-01", Time: "19:00"}

	// 30 goroutines of 3 guests each want 90 seats; only 45 fit.
	const workers = 30
	const party = 3

	var wg sync.WaitGroup
	committed := make(chan int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.CommitInSlot(ctx, slot, admitUpTo(party)); err == nil {
				committed <- party
			}
		}()
	}
	wg.Wait()
	close(committed)

	sum := 0
	for g := range committed {
		sum += g
	}
	assert.Equal(t, maxCapacity, sum)

	total, err := repo.TotalBooked(ctx, slot)
	require.NoError(t, err)
	assert.Equal(t, maxCapacity, total)
}

func TestReservationRepository_ConcurrentSlotsDoNotInterfere(t *testing.T) {
	ctx := context.Background()
	repo := NewReservationRepository(nil)

	slots := []domain.Slot{
		{Date: "2025-06-01", Time: "13:00"},
		{Date: "2025-06-01", Time: "19:00"},
		{Date: "2025-06-02", Time: "19:00"},
	}

	var wg sync.WaitGroup
	for _, slot := range slots {
		for i := 0; i < 9; i++ {
			wg.Add(1)
			go func(s domain.Slot) {
				defer wg.Done()
				_, err := repo.CommitInSlot(ctx, s, admitUpTo(5))
				if err != nil {
					t.Errorf("unexpected rejection for %s: %v", s, err)
				}
			}(slot)
		}
	}
	wg.Wait()

	// Each slot fills independently to its own 45.
	for _, slot := range slots {
		total, err := repo.TotalBooked(ctx, slot)
		require.NoError(t, err)
		assert.Equal(t, maxCapacity, total)
	}
}

func TestReservationRepository_AdmitErrorPassthrough(t *testing.T) {
	ctx := context.Background()
	repo := NewReservationRepository(nil)
	slot := domain.Slot{Date: "2025-06-01", Time: "19:00"}

	sentinel := errors.New("decide failed")
	_, err := repo.CommitInSlot(ctx, slot, func(totalBooked int) (*domain.Reservation, error) {
		return nil, sentinel
	})
	require.ErrorIs(t, err, sentinel)
}

func TestReservationRepository_Confirm(t *testing.T) {
	ctx := context.Background()
	repo := NewReservationRepository(nil)
	slot := domain.Slot{Date: "2025-06-01", Time: "19:00"}

	res, err := repo.CommitInSlot(ctx, slot, admitUpTo(5))
	require.NoError(t, err)

	confirmed, err := repo.Confirm(ctx, res.ID)
	require.NoError(t, err)
	assert.True(t, confirmed.Confirmed)

	got, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.True(t, got.Confirmed)

	// Confirming does not change the booked total.
	total, err := repo.TotalBooked(ctx, slot)
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	_, err = repo.Confirm(ctx, "999")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReservationRepository_ListBySlot(t *testing.T) {
	ctx := context.Background()
	customers := NewCustomerRepository()
	repo := NewReservationRepository(customers)
	slot := domain.Slot{Date: "2025-06-01", Time: "19:00"}

	cust := domain.NewCustomer("Asha", "asha@example.com", "+91-9000000001", time.Now(), time.Now())
	require.NoError(t, customers.UpsertByEmail(ctx, cust))

	base := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		createdAt := base.Add(time.Duration(i) * time.Minute)
		_, err := repo.CommitInSlot(ctx, slot, func(totalBooked int) (*domain.Reservation, error) {
			return &domain.Reservation{
				Reference:  "ref",
				CustomerID: cust.ID,
				Guests:     2,
				CreatedAt:  createdAt,
			}, nil
		})
		require.NoError(t, err)
	}

	items, total, err := repo.ListBySlot(ctx, slot, domain.PaginationParams{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 2)
	// Newest first.
	assert.True(t, items[0].Reservation.CreatedAt.After(items[1].Reservation.CreatedAt))
	require.NotNil(t, items[0].Customer)
	assert.Equal(t, "asha@example.com", items[0].Customer.Email)

	items, total, err = repo.ListBySlot(ctx, slot, domain.PaginationParams{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, items, 1)
}
