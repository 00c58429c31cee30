package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurantbooking/internal/delivery/http/helpers"
	"restaurantbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMenuService struct {
	sections  []*domain.MenuSection
	browseErr error

	created   *domain.MenuItem
	createErr error

	updated   *domain.MenuItem
	updateErr error

	availErr     error
	gotItemID    string
	gotAvailable bool
}

func (f *fakeMenuService) BrowseMenu(ctx context.Context) ([]*domain.MenuSection, error) {
	return f.sections, f.browseErr
}

func (f *fakeMenuService) CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = item
	out := *item
	out.ID = "item-1"
	return &out, nil
}

func (f *fakeMenuService) UpdateItem(ctx context.Context, id string, upd *domain.MenuItemUpdate) (*domain.MenuItem, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updated, nil
}

func (f *fakeMenuService) SetAvailability(ctx context.Context, id string, available bool) error {
	f.gotItemID = id
	f.gotAvailable = available
	return f.availErr
}

func TestMenuController_BrowseMenu(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeMenuService{
			sections: []*domain.MenuSection{
				{Category: "soups", Label: "Soups", Items: []*domain.MenuItem{{ID: "item-1", Name: "Tomato Dhaniya Shorba"}}},
			},
		}
		ctrl := NewMenuController(testLogger(), fake)

		req := httptest.NewRequest(http.MethodGet, "http://test/menu", nil)
		rr := httptest.NewRecorder()

		ctrl.BrowseMenu(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.Nil(t, envelope.Error)

		dataBytes, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		var sections []*domain.MenuSection
		require.NoError(t, json.Unmarshal(dataBytes, &sections))
		require.Len(t, sections, 1)
		assert.Equal(t, "Soups", sections[0].Label)
	})

	t.Run("empty menu is an empty array", func(t *testing.T) {
		ctrl := NewMenuController(testLogger(), &fakeMenuService{})

		req := httptest.NewRequest(http.MethodGet, "http://test/menu", nil)
		rr := httptest.NewRecorder()

		ctrl.BrowseMenu(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"data":[]`)
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := NewMenuController(testLogger(), &fakeMenuService{browseErr: assert.AnError})

		req := httptest.NewRequest(http.MethodGet, "http://test/menu", nil)
		rr := httptest.NewRecorder()

		ctrl.BrowseMenu(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestMenuController_CreateMenuItem(t *testing.T) {
	validBody := `{"name":"Paneer Butter Masala","category":"paneer","sub_category":"paneer_dishes","sizes_and_prices":[{"size":"Half","price":180},{"size":"Full","price":320}]}`

	t.Run("success", func(t *testing.T) {
		fake := &fakeMenuService{}
		ctrl := NewMenuController(testLogger(), fake)

		req := httptest.NewRequest(http.MethodPost, "http://test/staff/menu/items", bytes.NewBufferString(validBody))
		rr := httptest.NewRecorder()

		ctrl.CreateMenuItem(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.NotNil(t, fake.created)
		assert.Equal(t, "Paneer Butter Masala", fake.created.Name)
		assert.True(t, fake.created.Available, "new items start available")

		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		dataBytes, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		var item domain.MenuItem
		require.NoError(t, json.Unmarshal(dataBytes, &item))
		assert.Equal(t, "item-1", item.ID)
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := NewMenuController(testLogger(), &fakeMenuService{})

		req := httptest.NewRequest(http.MethodPost, "http://test/staff/menu/items", bytes.NewBufferString(`{"description":"nope"}`))
		rr := httptest.NewRecorder()

		ctrl.CreateMenuItem(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.NotNil(t, envelope.Error)
		assert.Contains(t, envelope.Error.Message, "name is required")
		assert.Contains(t, envelope.Error.Message, "category is required")
	})

	t.Run("unknown category", func(t *testing.T) {
		ctrl := NewMenuController(testLogger(), &fakeMenuService{
			createErr: fmt.Errorf("%w: unknown category", domain.ErrInvalidInput),
		})

		req := httptest.NewRequest(http.MethodPost, "http://test/staff/menu/items", bytes.NewBufferString(validBody))
		rr := httptest.NewRecorder()

		ctrl.CreateMenuItem(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMenuController_UpdateMenuItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		updated := &domain.MenuItem{ID: "item-1", Name: "Dal Makhani"}
		ctrl := NewMenuController(testLogger(), &fakeMenuService{updated: updated})

		req := httptest.NewRequest(http.MethodPatch, "http://test/staff/menu/items/item-1", bytes.NewBufferString(`{"name":"Dal Makhani"}`))
		req.SetPathValue("itemID", "item-1")
		rr := httptest.NewRecorder()

		ctrl.UpdateMenuItem(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := NewMenuController(testLogger(), &fakeMenuService{updateErr: domain.ErrNotFound})

		req := httptest.NewRequest(http.MethodPatch, "http://test/staff/menu/items/missing", bytes.NewBufferString(`{"name":"X"}`))
		req.SetPathValue("itemID", "missing")
		rr := httptest.NewRecorder()

		ctrl.UpdateMenuItem(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestMenuController_SetMenuItemAvailability(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeMenuService{}
		ctrl := NewMenuController(testLogger(), fake)

		req := httptest.NewRequest(http.MethodPatch, "http://test/staff/menu/items/item-1/availability", bytes.NewBufferString(`{"available":false}`))
		req.SetPathValue("itemID", "item-1")
		rr := httptest.NewRecorder()

		ctrl.SetMenuItemAvailability(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "item-1", fake.gotItemID)
		assert.False(t, fake.gotAvailable)
		assert.Contains(t, rr.Body.String(), `"status":"updated"`)
	})

	t.Run("missing available flag", func(t *testing.T) {
		ctrl := NewMenuController(testLogger(), &fakeMenuService{})

		req := httptest.NewRequest(http.MethodPatch, "http://test/staff/menu/items/item-1/availability", bytes.NewBufferString(`{}`))
		req.SetPathValue("itemID", "item-1")
		rr := httptest.NewRecorder()

		ctrl.SetMenuItemAvailability(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := NewMenuController(testLogger(), &fakeMenuService{availErr: domain.ErrNotFound})

		req := httptest.NewRequest(http.MethodPatch, "http://test/staff/menu/items/missing/availability", bytes.NewBufferString(`{"available":true}`))
		req.SetPathValue("itemID", "missing")
		rr := httptest.NewRecorder()

		ctrl.SetMenuItemAvailability(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}
