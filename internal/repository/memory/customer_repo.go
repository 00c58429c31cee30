package memory

import (
	"context"
	"strconv"
	"sync"

	"restaurantbooking/internal/domain"
)

// CustomerRepository keeps customers in memory, keyed by email.
type CustomerRepository struct {
	mu      sync.Mutex
	byEmail map[string]*domain.Customer
	byID    map[string]*domain.Customer
	nextID  int64
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		byEmail: make(map[string]*domain.Customer),
		byID:    make(map[string]*domain.Customer),
	}
}

func (r *CustomerRepository) UpsertByEmail(ctx context.Context, c *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byEmail[c.Email]; ok {
		existing.Name = c.Name
		existing.Phone = c.Phone
		existing.UpdatedAt = c.UpdatedAt
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
		return nil
	}
	r.nextID++
	c.ID = strconv.FormatInt(r.nextID, 10)
	stored := *c
	r.byEmail[c.Email] = &stored
	r.byID[c.ID] = &stored
	return nil
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *c
	return &copied, nil
}
