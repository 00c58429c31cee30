// Package seed loads the restaurant's menu card into the menu item store,
// so a fresh deployment starts with the full card instead of an empty menu.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"restaurantbooking/internal/domain"
)

// Result reports what a menu load did.
type Result struct {
	Created int
	Skipped int
}

// LoadMenu inserts the menu card items that are not already present,
// matching on (name, category). Existing items are left untouched, so
// running the loader again is safe.
func LoadMenu(ctx context.Context, repo domain.MenuItemRepository, logger *slog.Logger) (Result, error) {
	var res Result

	existing, err := repo.ListAvailable(ctx)
	if err != nil {
		return res, fmt.Errorf("list existing menu items: %w", err)
	}
	present := make(map[itemKey]bool, len(existing))
	for _, it := range existing {
		present[itemKey{it.Name, it.Category}] = true
	}

	for _, it := range MenuItems() {
		if present[itemKey{it.Name, it.Category}] {
			res.Skipped++
			continue
		}
		if err := repo.Create(ctx, it); err != nil {
			return res, fmt.Errorf("create menu item %q: %w", it.Name, err)
		}
		logger.Debug("seeded menu item", "name", it.Name, "category", it.Category)
		res.Created++
	}
	return res, nil
}

type itemKey struct {
	name     string
	category string
}

// MenuItems returns the menu card as domain items, deduplicated on
// (name, category): the card lists a few dishes twice, and the later
// entry's prices win while the dish keeps its first position.
func MenuItems() []*domain.MenuItem {
	items := menuCard()
	out := make([]*domain.MenuItem, 0, len(items))
	index := make(map[itemKey]int, len(items))
	for _, it := range items {
		key := itemKey{it.Name, it.Category}
		if i, ok := index[key]; ok {
			out[i] = it
			continue
		}
		index[key] = len(out)
		out = append(out, it)
	}
	return out
}

func item(name, category, subCategory string, sizes ...domain.SizePrice) *domain.MenuItem {
	it := &domain.MenuItem{
		Name:           name,
		Category:       category,
		SizesAndPrices: sizes,
		Available:      true,
	}
	if subCategory != "" {
		it.SubCategory = &subCategory
	}
	return it
}

func sp(size string, price int) domain.SizePrice {
	return domain.SizePrice{Size: size, Price: price}
}

// menuCard is the restaurant's menu card, transcribed in card order.
// A price of 0 means "as per market rate".
func menuCard() []*domain.MenuItem {
	return []*domain.MenuItem{
		// Chinese veg starter: momos
		item("VEG MOMOS", "chinese_veg_starter", "momos", sp("Steam", 140), sp("Fry", 160)),
		item("PANEER MOMOS", "chinese_veg_starter", "momos", sp("Steam", 180), sp("Fry", 210)),
		item("CHEESE MOMOS", "chinese_veg_starter", "momos", sp("Steam", 180), sp("Fry", 210)),
		item("CHICKEN MOMOS", "chinese_nonveg_starter", "momos", sp("Steam", 180), sp("Fry", 200)),

		// Chinese veg starter: chilly and manchurian
		item("CHILLY", "chinese_veg_starter", "chilly", sp("Dry", 170), sp("Gravy", 220)),
		item("CORN MANCHURIAN", "chinese_veg_starter", "manchurian", sp("Dry", 170), sp("Gravy", 220)),
		item("MANCHURIAN", "chinese_veg_starter", "manchurian", sp("Dry", 170), sp("Gravy", 220)),

		// Chinese veg starter: crispy
		item("CRISPY", "chinese_veg_starter", "dry", sp("Dry", 200), sp("Gravy", 250)),
		item("VEG BHEL", "chinese_veg_starter", "dry", sp("Full", 180)),
		item("SCHEZWAN VEG", "chinese_veg_starter", "dry", sp("Dry", 200), sp("Gravy", 270)),
		item("GREEN PEPPER SAUCE", "chinese_veg_starter", "gravy", sp("Gravy", 270)),

		// Chinese veg starter: rolls
		item("SPRING ROLL (3pcs)", "chinese_veg_starter", "rolls", sp("Full", 190), sp("Half", 230)),
		item("CRISPY CORN", "chinese_veg_starter", "dry", sp("Full", 170)),
		item("CIGGA ROLL (4pcs)", "snacks", "rolls", sp("Full", 180)),
		item("STEAM CORN (4pcs)", "snacks", "steam", sp("Full", 180)),
		item("LOLLIPOP (8pcs)", "chinese_nonveg_starter", "dry", sp("Full", 170)),
		item("CHANA KOLWADA", "chinese_veg_starter", "dry", sp("Full", 170)),

		// Soups
		item("MANCHOW SOUP", "soups", "chinese_soup", sp("Veg", 130), sp("Chicken", 140)),
		item("HOT AND SOUR SOUP", "soups", "hot_sour_soup", sp("Veg", 130), sp("Chicken", 140)),
		item("CLEAR SOUP", "soups", "clear_soup", sp("Veg", 130), sp("Chicken", 140)),
		item("SWEET CORN SOUP", "soups", "chinese_soup", sp("Veg", 130), sp("Chicken", 140)),
		item("LEMON CORIANDER SOUP", "soups", "chinese_soup", sp("Veg", 130), sp("Chicken", 180)),
		item("TOMATO SOUP", "soups", "chinese_soup", sp("Full", 160)),

		// Snacks
		item("CIGGA ROLL", "snacks", "rolls", sp("Steam", 130), sp("Fry", 140)),
		item("STEAM CORN", "snacks", "steam", sp("Steam", 140), sp("Fry", 160)),
		item("SPRING ROLL", "snacks", "rolls", sp("Steam", 140), sp("Fry", 160)),
		item("ROAST CORN", "snacks", "fry", sp("Full", 200), sp("Half", 280)),
		item("FRENCH FRIES", "snacks", "fry", sp("Full", 140)),
		item("FRENCH CHEESE FRIES", "snacks", "fry", sp("Full", 160)),

		// Veg Indian snacks
		item("VEG FINGER", "veg_indian_snacks", "fry", sp("4PC", 220)),
		item("VEG CHEESE FINGER", "veg_indian_snacks", "fry", sp("4PC", 270)),
		item("PANEER PAKODA", "veg_indian_snacks", "fry", sp("4PC", 230)),
		item("FRY PAPAD", "veg_indian_snacks", "fry", sp("4PC", 90)),
		item("MASALA PAPAD", "veg_indian_snacks", "fry", sp("4PC", 70)),
		item("CHEESE PAKODA", "veg_indian_snacks", "fry", sp("10PC", 230)),
		item("PANEER CHATPATA", "veg_indian_snacks", "dry", sp("Full", 280)),
		item("MUSHROOM CHATPATA", "veg_indian_snacks", "dry", sp("10PC", 280)),
		item("VEG PAPAD", "veg_indian_snacks", "fry", sp("Full", 120)),

		// Non-veg Indian snacks
		item("CHICKEN FINGER", "nonveg_indian_snacks", "chicken", sp("6PC", 260)),
		item("CHICKEN CHEESE FINGER", "nonveg_indian_snacks", "chicken", sp("6PC", 310)),
		item("EGG PAKODA", "nonveg_indian_snacks", "egg", sp("4PC", 140)),

		// Mocktail
		item("FRESH LIME SODA", "mocktail", "", sp("Full", 120)),
		item("FRESH LIME WATER", "mocktail", "", sp("Full", 120)),

		// Chinese non-veg starter
		item("CHICKEN CHILLY", "chinese_nonveg_starter", "chilly", sp("Dry", 210), sp("Gravy", 250)),
		item("CHICKEN MANCHURIAN", "chinese_nonveg_starter", "manchurian", sp("Dry", 210), sp("Gravy", 250)),
		item("CHICKEN CRISPY", "chinese_nonveg_starter", "dry", sp("Dry", 240), sp("Gravy", 280)),
		item("CHICKEN SCHEZWAN", "chinese_nonveg_starter", "dry", sp("Dry", 240), sp("Gravy", 280)),
		item("CHICKEN LOLLIPOP (8 PC)", "chinese_nonveg_starter", "dry", sp("Dry", 240), sp("Gravy", 280)),
		item("CHICKEN EMPTY", "chinese_nonveg_starter", "dry", sp("Full", 210)),
		item("CHICKEN WINGS", "chinese_nonveg_starter", "dry", sp("Full", 200)),
		item("PRAWNS HONEY CHILLI", "chinese_nonveg_starter", "chilly", sp("Full", 300)),
		item("CHICKEN MANCHOW", "chinese_nonveg_starter", "manchurian", sp("Full", 200)),
		item("GARLIC PEPPER SAUCE", "chinese_nonveg_starter", "gravy", sp("Gravy", 240)),
		item("CHILI PEPPER SAUCE", "chinese_nonveg_starter", "gravy", sp("Gravy", 310)),
		item("SCHEZWAN SAUCE", "chinese_nonveg_starter", "gravy", sp("Gravy", 310)),
		item("GREEN PEPPER SAUCE", "chinese_nonveg_starter", "gravy", sp("Gravy", 320)),

		// Chinese non-veg tandoori starter
		item("CHICKEN TANDOORI", "chinese_nonveg_tandoori", "tandoori", sp("Half", 250), sp("Full", 410)),
		item("CHICKEN TIKKA", "chinese_nonveg_tandoori", "chicken_tikka", sp("6PC", 280)),
		item("CHICKEN TANDOORI LOLLIPOP", "chinese_nonveg_tandoori", "tandoori", sp("6PC", 230)),

		// Chinese veg tandoori starter
		item("SUFYANA PANEER TIKKA", "chinese_veg_tandoori", "paneer_tikka", sp("4PC", 300)),
		item("PANEER MALAI TIKKA", "chinese_veg_tandoori", "paneer_tikka", sp("4PC", 330)),
		item("PANEER TIKKA", "chinese_veg_tandoori", "paneer_tikka", sp("4PC", 270)),
		item("MUSHROOM TANDOORI", "chinese_veg_tandoori", "tandoori", sp("4PC", 250)),
		item("ALOO TANDOORI", "chinese_veg_tandoori", "tandoori", sp("10PC", 220)),

		// Bombil sea food
		item("BOMBIL", "bombil_seafood", "", sp("Full", 180)),
		item("MANDLI", "bombil_seafood", "", sp("Full", 180)),
		item("BANGDA", "bombil_seafood", "", sp("Full", 180)),
		item("RAWAS KOLWADA", "bombil_seafood", "", sp("Full", 190)),
		item("SURMAI (AS PER MKT)", "bombil_seafood", "", sp("Full", 0)),

		// Ginger
		item("CHICKEN MALAI TIKKA", "ginger", "chicken", sp("6PC", 330)),
		item("CHICKEN PAHADI", "ginger", "chicken", sp("6PC", 300)),
		item("CHICKEN SEEKH KABAB", "ginger", "chicken", sp("6PC", 330)),
		item("CHICKEN POKARE KABAB", "ginger", "chicken", sp("6PC", 330)),
		item("CHICKEN CHEESE MALAI TIKKA", "ginger", "chicken", sp("6PC", 370)),
		item("CHICKEN GINGER", "ginger", "chicken", sp("6PC", 340)),

		// Fish tandoori
		item("PRAWNS TANDOORI", "fish_tandoori", "prawns", sp("4PC", 330)),
		item("POMFRET TANDOORI", "fish_tandoori", "", sp("4PC", 300)),
		item("POMFRET TANDOORI (AS PER MKT SIZE)", "fish_tandoori", "", sp("Full", 0)),
		item("KALMI TANDOORI (AS PER MKT)", "fish_tandoori", "", sp("Full", 0)),

		// Quick bites
		item("BOILED EGG (2PC)", "quick_bites", "egg", sp("Full", 60)),
		item("EGG BHURJI (2PC)", "quick_bites", "egg", sp("Full", 100)),
		item("EGG FRY (2PC)", "quick_bites", "egg", sp("Full", 80)),
		item("EGG PAKODA (2PC)", "quick_bites", "egg", sp("Full", 140)),
		item("EGG CHEESE PAKODA (2PC)", "quick_bites", "egg", sp("Full", 160)),

		// Chinese veg rice
		item("FRIED RICE", "chinese_veg_rice", "fried_rice", sp("Veg", 170), sp("Mushroom", 200), sp("Paneer", 230)),
		item("SCHEZWAN FRIED RICE", "chinese_veg_rice", "schezwan_rice", sp("Veg", 200), sp("Mushroom", 230), sp("Paneer", 240)),
		item("TRIPLE SCHEZWAN FRIED RICE", "chinese_veg_rice", "triple_schezwan", sp("Veg", 210), sp("Mushroom", 240), sp("Paneer", 270)),
		item("MANCHURIAN FRIED RICE", "chinese_veg_rice", "manchurian_rice", sp("Veg", 230), sp("Mushroom", 240), sp("Paneer", 270)),
		item("GREEN PEPPER FRIED RICE", "chinese_veg_rice", "fried_rice", sp("Veg", 220), sp("Mushroom", 230), sp("Paneer", 280)),
		item("BURNT GARLIC FRIED RICE", "chinese_veg_rice", "burnt_garlic", sp("Veg", 220), sp("Mushroom", 230), sp("Paneer", 280)),

		// Chinese veg noodles
		item("HAKKA NOODLES", "chinese_veg_noodles", "hakka_noodles", sp("Veg", 170), sp("Mushroom", 200), sp("Paneer", 230)),
		item("SCHEZWAN NOODLES", "chinese_veg_noodles", "schezwan_noodles", sp("Veg", 190), sp("Mushroom", 220), sp("Paneer", 230)),
		item("TRIPLE SCHEZWAN NOODLES", "chinese_veg_noodles", "triple_schezwan_noodles", sp("Veg", 200), sp("Mushroom", 230), sp("Paneer", 310)),
		item("MANCHURIAN NOODLES", "chinese_veg_noodles", "manchurian_noodles", sp("Veg", 210), sp("Mushroom", 240), sp("Paneer", 270)),
		item("CHEESE PEPPER NOODLES", "chinese_veg_noodles", "cheese_noodles", sp("Veg", 220), sp("Mushroom", 240), sp("Paneer", 280)),
		item("BURNT GARLIC NOODLES", "chinese_veg_noodles", "burnt_garlic", sp("Veg", 220), sp("Mushroom", 230), sp("Paneer", 280)),

		// Chinese non-veg rice
		item("EGG RICE", "chinese_nonveg_rice", "egg", sp("Chick", 190), sp("Egg", 170), sp("Prawns", 240)),
		item("SCHEZWAN FRIED RICE", "chinese_nonveg_rice", "schezwan_rice", sp("Chick", 220), sp("Egg", 200), sp("Prawns", 310)),
		item("TRIPLE SCHEZWAN FRIED RICE", "chinese_nonveg_rice", "triple_schezwan", sp("Chick", 230), sp("Egg", 210), sp("Prawns", 320)),
		item("MANCHURIAN FRIED RICE", "chinese_nonveg_rice", "manchurian_rice", sp("Chick", 230), sp("Egg", 210), sp("Prawns", 320)),
		item("GREEN PEPPER FRIED RICE", "chinese_nonveg_rice", "fried_rice", sp("Chick", 250), sp("Egg", 230), sp("Prawns", 340)),
		item("BURNT GARLIC FRIED RICE", "chinese_nonveg_rice", "burnt_garlic", sp("Chick", 250), sp("Egg", 230), sp("Prawns", 340)),

		// Chinese non-veg noodles
		item("HAKKA NOODLES", "chinese_nonveg_noodles", "hakka_noodles", sp("Chick", 190), sp("Egg", 170), sp("Prawns", 240)),
		item("SCHEZWAN NOODLES", "chinese_nonveg_noodles", "schezwan_noodles", sp("Chick", 200), sp("Egg", 200), sp("Prawns", 310)),
		item("TRIPLE SCHEZWAN NOODLES", "chinese_nonveg_noodles", "triple_schezwan_noodles", sp("Chick", 220), sp("Egg", 200), sp("Prawns", 310)),
		item("MANCHURIAN NOODLES", "chinese_nonveg_noodles", "manchurian_noodles", sp("Chick", 210), sp("Egg", 240), sp("Prawns", 270)),
		item("CHEESE PEPPER NOODLES", "chinese_nonveg_noodles", "cheese_noodles", sp("Chick", 220), sp("Egg", 240), sp("Prawns", 280)),
		item("BURNT GARLIC NOODLES", "chinese_nonveg_noodles", "burnt_garlic", sp("Chick", 220), sp("Egg", 230), sp("Prawns", 280)),

		// Veg Indian main course
		item("DAL FRY", "veg_indian_main", "dal", sp("Full", 160)),
		item("DAL TADKA", "veg_indian_main", "dal", sp("Full", 180)),
		item("DAL MAKHANI", "veg_indian_main", "dal", sp("Full", 230)),

		// Vegetable
		item("CHANA MASALA", "vegetable", "masala", sp("Full", 200)),
		item("VEG KADHAI", "vegetable", "curry", sp("Full", 220)),
		item("VEG KOLHAPURI", "vegetable", "curry", sp("Full", 220)),
		item("VEG JAIPURI", "vegetable", "curry", sp("Full", 220)),
		item("BHINDI FRY MASALA", "vegetable", "masala", sp("Full", 220)),
		item("BHINDI FRY", "vegetable", "fry", sp("Full", 230)),
		item("VEG HANDI", "vegetable", "curry", sp("Full", 220)),
		item("VEG KORMA", "vegetable", "curry", sp("Full", 270)),
		item("MUSHROOM MASALA", "vegetable", "masala", sp("Full", 220)),

		// Dum
		item("DUM ALOO", "dum", "", sp("Full", 270)),
		item("ALOO MUTTER", "dum", "", sp("Full", 200)),
		item("ALOO MUTTER", "dum", "", sp("Full", 200)),
		item("ALOO GOBI MASALA", "dum", "", sp("Full", 200)),

		// Paneer
		item("SHAHI PANEER", "paneer", "paneer_dishes", sp("Full", 280)),
		item("PANEER LABABDAAR", "paneer", "paneer_dishes", sp("Full", 330)),
		item("PANEER TIKKA MASALA", "paneer", "paneer_dishes", sp("Full", 280)),
		item("PANEER BUTTER MASALA", "paneer", "paneer_dishes", sp("Full", 300)),
		item("KAJU PANEER MASALA (4PCS)", "paneer", "paneer_dishes", sp("Full", 330)),
		item("PANEER TIKKA MASALA (4PCS)", "paneer", "paneer_dishes", sp("Full", 350)),
		item("PANEER KADHAI", "paneer", "paneer_dishes", sp("Full", 300)),
		item("PANEER PALAK", "paneer", "paneer_dishes", sp("Full", 260)),
		item("PANEER MUSHROOM MASALA", "paneer", "paneer_dishes", sp("Full", 300)),
		item("PANEER KOLHAPURI", "paneer", "paneer_dishes", sp("Full", 300)),
		item("PANEER MUTTER", "paneer", "paneer_dishes", sp("Full", 300)),
		item("PANEER PASANDA", "paneer", "paneer_dishes", sp("Full", 280)),
		item("PANEER DO PATAKA", "paneer", "paneer_dishes", sp("Full", 290)),

		// Late additions on the card
		item("GOBI KEEMA MUTTER", "vegetable", "curry", sp("Full", 230)),
		item("BHINDI FRY", "vegetable", "fry", sp("Full", 220)),
		item("PANEER BHURJI", "paneer", "paneer_dishes", sp("Full", 300)),
		item("HAKKA NOODLES", "chinese_nonveg_noodles", "hakka_noodles", sp("Chicken", 190), sp("Egg", 170), sp("Prawns", 280)),
		item("SCHEZWAN NOODLES", "chinese_nonveg_noodles", "schezwan_noodles", sp("Chicken", 220), sp("Egg", 200), sp("Prawns", 310)),
		item("TRIPLE SCHEZWAN NOODLES", "chinese_nonveg_noodles", "triple_schezwan_noodles", sp("Chicken", 200), sp("Egg", 230), sp("Prawns", 310)),
	}
}
