package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurantbooking/internal/domain"
	"restaurantbooking/internal/repository/memory"
)

func TestMenuItems_AllEntriesValid(t *testing.T) {
	items := MenuItems()
	require.NotEmpty(t, items)

	for _, it := range items {
		assert.NotEmpty(t, it.Name)
		_, ok := domain.CategoryLabel(it.Category)
		assert.True(t, ok, "unknown category %q on %q", it.Category, it.Name)
		if it.SubCategory != nil {
			assert.True(t, domain.ValidSubCategory(*it.SubCategory),
				"unknown sub-category %q on %q", *it.SubCategory, it.Name)
		}
		require.NotEmpty(t, it.SizesAndPrices, "no prices on %q", it.Name)
		for _, sz := range it.SizesAndPrices {
			assert.NotEmpty(t, sz.Size)
			assert.GreaterOrEqual(t, sz.Price, 0)
		}
		assert.True(t, it.Available)
	}
}

func TestMenuItems_DeduplicatesOnNameAndCategory(t *testing.T) {
	items := MenuItems()

	type key struct{ name, category string }
	seen := map[key]int{}
	for _, it := range items {
		seen[key{it.Name, it.Category}]++
	}
	for k, n := range seen {
		assert.Equal(t, 1, n, "%v appears %d times", k, n)
	}

	// The card lists a few dishes twice; the later entry's prices win.
	var bhindiFry, alooMutter int
	for _, it := range items {
		switch {
		case it.Name == "BHINDI FRY" && it.Category == "vegetable":
			bhindiFry++
			require.Len(t, it.SizesAndPrices, 1)
			assert.Equal(t, 220, it.SizesAndPrices[0].Price)
		case it.Name == "ALOO MUTTER" && it.Category == "dum":
			alooMutter++
		}
	}
	assert.Equal(t, 1, bhindiFry)
	assert.Equal(t, 1, alooMutter)

	assert.Len(t, items, 138)
}

func TestLoadMenu_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewMenuItemRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	res, err := LoadMenu(ctx, repo, logger)
	require.NoError(t, err)
	assert.Equal(t, len(MenuItems()), res.Created)
	assert.Zero(t, res.Skipped)

	stored, err := repo.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, len(MenuItems()))

	// A second run finds everything already present.
	res, err = LoadMenu(ctx, repo, logger)
	require.NoError(t, err)
	assert.Zero(t, res.Created)
	assert.Equal(t, len(MenuItems()), res.Skipped)
}
