package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"restaurantbooking/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestReservationRepository_TotalBooked(t *testing.T) {
	ctx := context.Background()
	slot := domain.Slot{Date: "2025-06-01", Time: "19:00"}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    int
		wantErr bool
	}{
		{
			name: "sums guests",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COALESCE\(SUM\(guests\), 0\)`).
					WithArgs("2025-06-01", "19:00").
					WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(30))
			},
			want: 30,
		},
		{
			name: "empty slot is zero",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COALESCE\(SUM\(guests\), 0\)`).
					WithArgs("2025-06-01", "19:00").
					WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))
			},
			want: 0,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COALESCE\(SUM\(guests\), 0\)`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewReservationRepository(db)
			got, err := repo.TotalBooked(ctx, slot)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReservationRepository_CommitInSlot(t *testing.T) {
	ctx := context.Background()
	slot := domain.Slot{Date: "2025-06-01", Time: "19:00"}
	createdAt := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

	t.Run("admit accepts and row is inserted", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
			WithArgs(slotLockKey(slot)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(guests\), 0\)`).
			WithArgs("2025-06-01", "19:00").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(10))
		mock.ExpectQuery(`INSERT INTO reservations`).
			WithArgs("ref-1", "cust-1", "2025-06-01", "19:00", 4, false, createdAt).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("res-1"))
		mock.ExpectCommit()

		repo := NewReservationRepository(db)
		var sawTotal int
		res, err := repo.CommitInSlot(ctx, slot, func(totalBooked int) (*domain.Reservation, error) {
			sawTotal = totalBooked
			return &domain.Reservation{
				Reference:  "ref-1",
				CustomerID: "cust-1",
				Slot:       slot,
				Guests:     4,
				CreatedAt:  createdAt,
			}, nil
		})
		require.NoError(t, err)
		require.Equal(t, 10, sawTotal)
		require.Equal(t, "res-1", res.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("admit rejects and transaction rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
			WithArgs(slotLockKey(slot)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(guests\), 0\)`).
			WithArgs("2025-06-01", "19:00").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(45))
		mock.ExpectRollback()

		repo := NewReservationRepository(db)
		_, err = repo.CommitInSlot(ctx, slot, func(totalBooked int) (*domain.Reservation, error) {
			return nil, &domain.CapacityError{Reason: domain.ReasonSlotFull, Message: "full"}
		})
		var capErr *domain.CapacityError
		require.ErrorAs(t, err, &capErr)
		require.Equal(t, domain.ReasonSlotFull, capErr.Reason)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

		repo := NewReservationRepository(db)
		_, err = repo.CommitInSlot(ctx, slot, func(totalBooked int) (*domain.Reservation, error) {
			t.Fatal("admit must not run when the transaction cannot start")
			return nil, nil
		})
		require.Error(t, err)
	})

	t.Run("insert error rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(guests\), 0\)`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))
		mock.ExpectQuery(`INSERT INTO reservations`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := NewReservationRepository(db)
		_, err = repo.CommitInSlot(ctx, slot, func(totalBooked int) (*domain.Reservation, error) {
			return &domain.Reservation{Reference: "r", CustomerID: "c", Guests: 2, CreatedAt: createdAt}, nil
		})
		require.Error(t, err)
		var capErr *domain.CapacityError
		require.False(t, errors.As(err, &capErr))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSlotLockKey(t *testing.T) {
	a := domain.Slot{Date: "2025-06-01", Time: "19:00"}
	b := domain.Slot{Date: "2025-06-01", Time: "19:30"}
	require.Equal(t, slotLockKey(a), slotLockKey(a))
	require.NotEqual(t, slotLockKey(a), slotLockKey(b))
}

func TestReservationRepository_Confirm(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE reservations`).
			WithArgs("res-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "reference", "customer_id", "date", "time", "guests", "confirmed", "created_at"}).
				AddRow("res-1", "ref-1", "cust-1", "2025-06-01", "19:00", 4, true, createdAt))

		repo := NewReservationRepository(db)
		res, err := repo.Confirm(ctx, "res-1")
		require.NoError(t, err)
		require.True(t, res.Confirmed)
		require.Equal(t, "19:00", res.Slot.Time)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE reservations`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewReservationRepository(db)
		_, err = repo.Confirm(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestReservationRepository_ListBySlot(t *testing.T) {
	ctx := context.Background()
	slot := domain.Slot{Date: "2025-06-01", Time: "19:00"}
	createdAt := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations`).
		WithArgs("2025-06-01", "19:00").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT r\.id, r\.reference, r\.customer_id`).
		WithArgs("2025-06-01", "19:00", 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "reference", "customer_id", "date", "time", "guests", "confirmed", "created_at",
			"c_id", "name", "email", "phone", "c_created_at", "c_updated_at",
		}).AddRow(
			"res-1", "ref-1", "cust-1", "2025-06-01", "19:00", 4, false, createdAt,
			"cust-1", "Asha", "asha@example.com", "+91-9000000001", createdAt, createdAt,
		))

	repo := NewReservationRepository(db)
	items, total, err := repo.ListBySlot(ctx, slot, domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, items, 1)
	require.Equal(t, "asha@example.com", items[0].Customer.Email)
	require.Equal(t, 4, items[0].Reservation.Guests)
	require.NoError(t, mock.ExpectationsWereMet())
}
