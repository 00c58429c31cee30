package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"restaurantbooking/internal/delivery/http/helpers"
	"restaurantbooking/internal/domain"
)

type MenuController struct {
	Logger  *slog.Logger
	Service domain.MenuService
}

func NewMenuController(logger *slog.Logger, svc domain.MenuService) *MenuController {
	return &MenuController{
		Logger:  logger,
		Service: svc,
	}
}

// BrowseMenuSuccessResponse is the success response envelope for GET /menu (200).
type BrowseMenuSuccessResponse struct {
	Data  []*domain.MenuSection `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// BrowseMenu godoc
// @Summary Browse the menu
// @Description Returns available menu items grouped by category in menu card order. Categories with no available items are omitted.
// @Tags menu
// @Produce json
// @Success 200 {object} controllers.BrowseMenuSuccessResponse "data is an array of menu sections"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /menu [get]
func (c *MenuController) BrowseMenu(w http.ResponseWriter, r *http.Request) {
	sections, err := c.Service.BrowseMenu(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if sections == nil {
		sections = []*domain.MenuSection{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sections)
}

// CreateMenuItemRequest is the request body for POST /staff/menu/items.
type CreateMenuItemRequest struct {
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Category       string             `json:"category"`
	SubCategory    *string            `json:"sub_category"`
	SizesAndPrices []domain.SizePrice `json:"sizes_and_prices"`
}

// Validate implements Validator. Category and sub-category codes are checked
// against the taxonomy by the service.
func (c CreateMenuItemRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Category == "" {
		errs = append(errs, "category is required")
	}
	if len(c.SizesAndPrices) == 0 {
		errs = append(errs, "sizes_and_prices must have at least one entry")
	}
	return errs
}

// CreateMenuItemSuccessResponse is the success response envelope for POST /staff/menu/items (201).
type CreateMenuItemSuccessResponse struct {
	Data  *domain.MenuItem  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateMenuItem godoc
// @Summary Create a menu item
// @Description Add a new item to the menu card. Category must be a known category code; sub_category, when given, must be a known sub-category code. New items start available. Requires staff authentication.
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body CreateMenuItemRequest true "Menu item data"
// @Success 201 {object} controllers.CreateMenuItemSuccessResponse "data contains the created item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /staff/menu/items [post]
func (c *MenuController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuItemRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	item, err := c.Service.CreateItem(r.Context(), &domain.MenuItem{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		SubCategory:    req.SubCategory,
		SizesAndPrices: req.SizesAndPrices,
		Available:      true,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, item)
}

// UpdateMenuItemRequest is the request body for PATCH /staff/menu/items/{itemID}.
// Omitted fields are left unchanged.
type UpdateMenuItemRequest struct {
	Name           *string             `json:"name"`
	Description    *string             `json:"description"`
	Category       *string             `json:"category"`
	SubCategory    *string             `json:"sub_category"`
	SizesAndPrices *[]domain.SizePrice `json:"sizes_and_prices"`
}

// UpdateMenuItemSuccessResponse is the success response envelope for PATCH /staff/menu/items/{itemID} (200).
type UpdateMenuItemSuccessResponse struct {
	Data  *domain.MenuItem  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UpdateMenuItem godoc
// @Summary Update a menu item
// @Description Partially update a menu item; omitted fields are left unchanged. Requires staff authentication.
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemID path string true "Menu item ID"
// @Param item body UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} controllers.UpdateMenuItemSuccessResponse "data contains the updated item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /staff/menu/items/{itemID} [patch]
func (c *MenuController) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("itemID")
	if itemID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing itemID")
		return
	}
	var req UpdateMenuItemRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	item, err := c.Service.UpdateItem(r.Context(), itemID, &domain.MenuItemUpdate{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		SubCategory:    req.SubCategory,
		SizesAndPrices: req.SizesAndPrices,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "menu item not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, item)
}

// SetMenuItemAvailabilityRequest is the request body for PATCH /staff/menu/items/{itemID}/availability.
type SetMenuItemAvailabilityRequest struct {
	Available *bool `json:"available"`
}

// Validate implements Validator.
func (s SetMenuItemAvailabilityRequest) Validate() []string {
	if s.Available == nil {
		return []string{"available is required"}
	}
	return nil
}

// SetMenuItemAvailabilityResponse is the data payload for PATCH /staff/menu/items/{itemID}/availability (200).
type SetMenuItemAvailabilityResponse struct {
	Status string `json:"status"`
}

// SetMenuItemAvailabilitySuccessResponse is the success response envelope for PATCH /staff/menu/items/{itemID}/availability (200).
type SetMenuItemAvailabilitySuccessResponse struct {
	Data  SetMenuItemAvailabilityResponse `json:"data"`
	Error *helpers.APIError               `json:"error"`
}

// SetMenuItemAvailability godoc
// @Summary Set menu item availability
// @Description Marks a menu item as available or unavailable on the menu card. Requires staff authentication.
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemID path string true "Menu item ID"
// @Param body body SetMenuItemAvailabilityRequest true "Availability flag"
// @Success 200 {object} controllers.SetMenuItemAvailabilitySuccessResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /staff/menu/items/{itemID}/availability [patch]
func (c *MenuController) SetMenuItemAvailability(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("itemID")
	if itemID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing itemID")
		return
	}
	var req SetMenuItemAvailabilityRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.SetAvailability(r.Context(), itemID, *req.Available); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "menu item not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SetMenuItemAvailabilityResponse{Status: "updated"})
}
