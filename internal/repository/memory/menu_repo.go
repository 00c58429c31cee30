package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"restaurantbooking/internal/domain"
)

// MenuItemRepository keeps menu items in memory.
type MenuItemRepository struct {
	mu     sync.Mutex
	items  map[string]*domain.MenuItem
	nextID int64
}

func NewMenuItemRepository() *MenuItemRepository {
	return &MenuItemRepository{items: make(map[string]*domain.MenuItem)}
}

func (r *MenuItemRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	item.ID = strconv.FormatInt(r.nextID, 10)
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *MenuItemRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *MenuItemRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	item.Available = available
	return nil
}

func (r *MenuItemRepository) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *MenuItemRepository) ListAvailable(ctx context.Context) ([]*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := []*domain.MenuItem{}
	for _, item := range r.items {
		if item.Available {
			copied := *item
			items = append(items, &copied)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}
