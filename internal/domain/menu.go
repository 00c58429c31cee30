package domain

import (
	"context"
	"time"
)

// SizePrice is one size/price variant of a menu item, e.g. {"Half", 180}.
type SizePrice struct {
	Size  string `json:"size"`
	Price int    `json:"price"`
}

// MenuItem represents one dish on the menu card.
// swagger:model MenuItem
type MenuItem struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Category       string      `json:"category"`
	SubCategory    *string     `json:"sub_category,omitempty"`
	SizesAndPrices []SizePrice `json:"sizes_and_prices"`
	Available      bool        `json:"available"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// MinPrice returns the lowest price across the item's size variants,
// or 0 when the item has none.
func (m *MenuItem) MinPrice() int {
	min := 0
	for _, sp := range m.SizesAndPrices {
		if min == 0 || sp.Price < min {
			min = sp.Price
		}
	}
	return min
}

// MenuCategory pairs a category code with its display label.
type MenuCategory struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// MenuCategories is the menu card's category taxonomy, in display order.
var MenuCategories = []MenuCategory{
	{"chinese_veg_starter", "Chinese Veg Starter"},
	{"chinese_nonveg_starter", "Chinese Non-Veg Starter"},
	{"veg_indian_snacks", "Veg Indian Snacks"},
	{"nonveg_indian_snacks", "Non-Veg Indian Snacks"},
	{"soups", "Soups"},
	{"snacks", "Snacks"},
	{"mocktail", "Mocktail"},
	{"chinese_veg_tandoori", "Chinese Veg Tandoori Starter"},
	{"chinese_nonveg_tandoori", "Chinese Non-Veg Tandoori Starter"},
	{"bombil_seafood", "Bombil Sea Food"},
	{"quick_bites", "Quick Bites"},
	{"chinese_veg_rice", "Chinese Veg Rice"},
	{"chinese_veg_noodles", "Chinese Veg Noodles"},
	{"chinese_nonveg_rice", "Chinese Non-Veg Rice"},
	{"chinese_nonveg_noodles", "Chinese Non-Veg Noodles"},
	{"veg_indian_main", "Veg - Indian Main Course"},
	{"vegetable", "Vegetable"},
	{"dum", "Dum"},
	{"paneer", "Paneer"},
	{"fish_tandoori", "Fish Tandoori"},
	{"ginger", "Ginger"},
	{"breads", "Breads"},
}

// MenuSubCategories lists the valid sub-category codes.
var MenuSubCategories = []MenuCategory{
	{"momos", "Momos"},
	{"chilly", "Chilly"},
	{"manchurian", "Manchurian"},
	{"dry", "Dry"},
	{"gravy", "Gravy"},
	{"rolls", "Rolls"},
	{"chinese_soup", "Chinese Soup"},
	{"hot_sour_soup", "Hot and Sour Soup"},
	{"clear_soup", "Clear Soup"},
	{"steam", "Steam"},
	{"fry", "Fry"},
	{"paneer_tikka", "Paneer Tikka"},
	{"chicken_tikka", "Chicken Tikka"},
	{"tandoori", "Tandoori"},
	{"fried_rice", "Fried Rice"},
	{"schezwan_rice", "Schezwan Rice"},
	{"triple_schezwan", "Triple Schezwan"},
	{"manchurian_rice", "Manchurian Rice"},
	{"burnt_garlic", "Burnt Garlic"},
	{"hakka_noodles", "Hakka Noodles"},
	{"schezwan_noodles", "Schezwan Noodles"},
	{"triple_schezwan_noodles", "Triple Schezwan Noodles"},
	{"manchurian_noodles", "Manchurian Noodles"},
	{"cheese_noodles", "Cheese Noodles"},
	{"dal", "Dal"},
	{"masala", "Masala"},
	{"curry", "Curry"},
	{"paneer_dishes", "Paneer Dishes"},
	{"egg", "Egg"},
	{"chicken", "Chicken"},
	{"mutton", "Mutton"},
	{"prawns", "Prawns"},
}

// CategoryLabel returns the display label for a category code.
func CategoryLabel(code string) (string, bool) {
	for _, c := range MenuCategories {
		if c.Code == code {
			return c.Label, true
		}
	}
	return "", false
}

// ValidSubCategory reports whether code is a known sub-category.
func ValidSubCategory(code string) bool {
	for _, c := range MenuSubCategories {
		if c.Code == code {
			return true
		}
	}
	return false
}

// MenuSection groups a category's available items for display.
type MenuSection struct {
	Category string      `json:"category"`
	Label    string      `json:"label"`
	Items    []*MenuItem `json:"items"`
}

// MenuItemRepository defines the interface for menu item storage
type MenuItemRepository interface {
	Create(ctx context.Context, item *MenuItem) error
	Update(ctx context.Context, item *MenuItem) error
	SetAvailability(ctx context.Context, id string, available bool) error
	GetByID(ctx context.Context, id string) (*MenuItem, error)
	ListAvailable(ctx context.Context) ([]*MenuItem, error)
}

// MenuItemUpdate carries a partial menu item update; nil fields are unchanged.
type MenuItemUpdate struct {
	Name           *string
	Description    *string
	Category       *string
	SubCategory    *string
	SizesAndPrices *[]SizePrice
}

// MenuService defines the business logic for menu browsing and management.
type MenuService interface {
	// BrowseMenu returns available items grouped by category in menu card
	// order; categories with no available items are omitted.
	BrowseMenu(ctx context.Context) ([]*MenuSection, error)
	CreateItem(ctx context.Context, item *MenuItem) (*MenuItem, error)
	UpdateItem(ctx context.Context, id string, upd *MenuItemUpdate) (*MenuItem, error)
	SetAvailability(ctx context.Context, id string, available bool) error
}
