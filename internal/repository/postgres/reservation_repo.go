package postgres

import (
	"context"
	"database/sql"
	"errors"
	"hash/fnv"

	"restaurantbooking/internal/domain"
)

type reservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(db *sql.DB) domain.ReservationRepository {
	return &reservationRepository{DB: db}
}

// slotLockKey derives the advisory-lock key for a slot. Admissions for the
// same slot serialize on this key; other slots use different keys and
// proceed in parallel.
func slotLockKey(slot domain.Slot) int64 {
	h := fnv.New64a()
	h.Write([]byte(slot.String()))
	return int64(h.Sum64())
}

const totalBookedQuery = `
	SELECT COALESCE(SUM(guests), 0)
	FROM reservations
	WHERE date = $1 AND time = $2
`

func (r *reservationRepository) TotalBooked(ctx context.Context, slot domain.Slot) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, totalBookedQuery, slot.Date, slot.Time).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *reservationRepository) CommitInSlot(ctx context.Context, slot domain.Slot, admit domain.AdmitFunc) (*domain.Reservation, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	// Transaction-scoped advisory lock keyed on the slot. It is released
	// automatically at commit or rollback, so a rejection from admit frees
	// the slot immediately.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, slotLockKey(slot)); err != nil {
		return nil, err
	}

	var total int
	if err := tx.QueryRowContext(ctx, totalBookedQuery, slot.Date, slot.Time).Scan(&total); err != nil {
		return nil, err
	}

	res, err := admit(total)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO reservations (reference, customer_id, date, time, guests, confirmed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, query,
		res.Reference, res.CustomerID, slot.Date, slot.Time, res.Guests, res.Confirmed, res.CreatedAt,
	).Scan(&res.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `
		SELECT id, reference, customer_id, date, time, guests, confirmed, created_at
		FROM reservations
		WHERE id = $1
	`
	res := &domain.Reservation{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&res.ID, &res.Reference, &res.CustomerID, &res.Slot.Date, &res.Slot.Time,
		&res.Guests, &res.Confirmed, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) ListBySlot(ctx context.Context, slot domain.Slot, p domain.PaginationParams) ([]*domain.ReservationWithCustomer, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM reservations WHERE date = $1 AND time = $2`
	if err := r.DB.QueryRowContext(ctx, countQuery, slot.Date, slot.Time).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT r.id, r.reference, r.customer_id, r.date, r.time, r.guests, r.confirmed, r.created_at,
		       c.id, c.name, c.email, c.phone, c.created_at, c.updated_at
		FROM reservations r
		JOIN customers c ON c.id = r.customer_id
		WHERE r.date = $1 AND r.time = $2
		ORDER BY r.created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.DB.QueryContext(ctx, query, slot.Date, slot.Time, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*domain.ReservationWithCustomer
	for rows.Next() {
		res := &domain.Reservation{}
		cust := &domain.Customer{}
		if err := rows.Scan(
			&res.ID, &res.Reference, &res.CustomerID, &res.Slot.Date, &res.Slot.Time,
			&res.Guests, &res.Confirmed, &res.CreatedAt,
			&cust.ID, &cust.Name, &cust.Email, &cust.Phone, &cust.CreatedAt, &cust.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		items = append(items, &domain.ReservationWithCustomer{Reservation: res, Customer: cust})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []*domain.ReservationWithCustomer{}
	}
	return items, total, nil
}

func (r *reservationRepository) Confirm(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `
		UPDATE reservations
		SET confirmed = TRUE
		WHERE id = $1
		RETURNING id, reference, customer_id, date, time, guests, confirmed, created_at
	`
	res := &domain.Reservation{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&res.ID, &res.Reference, &res.CustomerID, &res.Slot.Date, &res.Slot.Time,
		&res.Guests, &res.Confirmed, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return res, nil
}
