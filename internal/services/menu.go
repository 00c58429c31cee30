package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurantbooking/internal/domain"
)

type menuService struct {
	items domain.MenuItemRepository
}

// NewMenuService creates a MenuService backed by the given repository.
func NewMenuService(items domain.MenuItemRepository) domain.MenuService {
	return &menuService{items: items}
}

func (s *menuService) BrowseMenu(ctx context.Context) ([]*domain.MenuSection, error) {
	items, err := s.items.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}

	byCategory := make(map[string][]*domain.MenuItem)
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	// Menu card order; categories without available items are skipped.
	sections := []*domain.MenuSection{}
	for _, cat := range domain.MenuCategories {
		catItems := byCategory[cat.Code]
		if len(catItems) == 0 {
			continue
		}
		sections = append(sections, &domain.MenuSection{
			Category: cat.Code,
			Label:    cat.Label,
			Items:    catItems,
		})
	}
	return sections, nil
}

func (s *menuService) CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) UpdateItem(ctx context.Context, id string, upd *domain.MenuItemUpdate) (*domain.MenuItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}

	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Description != nil {
		item.Description = *upd.Description
	}
	if upd.Category != nil {
		item.Category = *upd.Category
	}
	if upd.SubCategory != nil {
		if *upd.SubCategory == "" {
			item.SubCategory = nil
		} else {
			item.SubCategory = upd.SubCategory
		}
	}
	if upd.SizesAndPrices != nil {
		item.SizesAndPrices = *upd.SizesAndPrices
	}
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}

	item.UpdatedAt = time.Now()
	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := s.items.SetAvailability(ctx, id, available); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("set menu item availability: %w", err)
	}
	return nil
}

func validateMenuItem(item *domain.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if _, ok := domain.CategoryLabel(item.Category); !ok {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, item.Category)
	}
	if item.SubCategory != nil && !domain.ValidSubCategory(*item.SubCategory) {
		return fmt.Errorf("%w: unknown sub_category %q", domain.ErrInvalidInput, *item.SubCategory)
	}
	for _, sp := range item.SizesAndPrices {
		if sp.Price < 0 {
			return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
		}
	}
	return nil
}
