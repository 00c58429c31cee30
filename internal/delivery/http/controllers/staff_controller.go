package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"restaurantbooking/internal/delivery/http/helpers"
	"restaurantbooking/internal/domain"
)

type StaffController struct {
	Logger  *slog.Logger
	Service domain.ReservationService
}

func NewStaffController(logger *slog.Logger, svc domain.ReservationService) *StaffController {
	return &StaffController{
		Logger:  logger,
		Service: svc,
	}
}

// ListReservationsResponse is the data payload for GET /staff/reservations (200).
type ListReservationsResponse struct {
	Items       []*domain.ReservationWithCustomer `json:"items"`
	TotalGuests int                               `json:"total_guests"`
	Pagination  helpers.PaginationMeta            `json:"pagination"`
}

// ListReservationsSuccessResponse is the success response envelope for GET /staff/reservations (200).
type ListReservationsSuccessResponse struct {
	Data  ListReservationsResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// ListReservations godoc
// @Summary List reservations for a slot
// @Description Returns the reservations booked for a date and time slot with customer details, the slot's total guest count, and pagination. Requires staff authentication.
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param date query string true "Reservation date (YYYY-MM-DD)"
// @Param time query string true "Reservation time (HH:MM)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListReservationsSuccessResponse "data contains items, total_guests, and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /staff/reservations [get]
func (c *StaffController) ListReservations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	slot, err := domain.NewSlot(q.Get("date"), q.Get("time"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}

	params := helpers.ParsePagination(r)
	list, err := c.Service.ListBySlot(r.Context(), slot, params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, list.TotalCount)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListReservationsResponse{
		Items:       list.Reservations,
		TotalGuests: list.TotalGuests,
		Pagination:  meta,
	})
}

// ConfirmReservationSuccessResponse is the success response envelope for PATCH /staff/reservations/{reservationID}/confirm (200).
type ConfirmReservationSuccessResponse struct {
	Data  *domain.Reservation `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ConfirmReservation godoc
// @Summary Confirm a reservation
// @Description Marks a reservation as confirmed by staff. Confirmation is bookkeeping only and never changes the slot's booked total. Requires staff authentication.
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param reservationID path string true "Reservation ID"
// @Success 200 {object} controllers.ConfirmReservationSuccessResponse "data contains the confirmed reservation"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /staff/reservations/{reservationID}/confirm [patch]
func (c *StaffController) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := r.PathValue("reservationID")
	if reservationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing reservationID")
		return
	}

	res, err := c.Service.Confirm(r.Context(), reservationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "reservation not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}
