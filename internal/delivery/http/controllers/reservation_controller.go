package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"restaurantbooking/internal/delivery/http/helpers"
	"restaurantbooking/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

type ReservationController struct {
	Logger  *slog.Logger
	Service domain.ReservationService
}

func NewReservationController(logger *slog.Logger, svc domain.ReservationService) *ReservationController {
	return &ReservationController{
		Logger:  logger,
		Service: svc,
	}
}

// writeCapacityError maps an admission rejection to an HTTP status: request
// shape problems get 400, capacity contention gets 409.
func writeCapacityError(w http.ResponseWriter, capErr *domain.CapacityError) {
	switch capErr.Reason {
	case domain.ReasonInvalidPartySize, domain.ReasonOverPartySize:
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, capErr.Message)
	default:
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, capErr.Message)
	}
}

// CheckAvailabilitySuccessResponse is the success response envelope for GET /reservations/availability (200).
type CheckAvailabilitySuccessResponse struct {
	Data  *domain.Availability `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// CheckAvailability godoc
// @Summary Check slot availability
// @Description Read-only capacity probe for a date and time slot. guests defaults to 1 when omitted. Never creates or holds a reservation.
// @Tags reservations
// @Produce json
// @Param date query string true "Reservation date (YYYY-MM-DD)"
// @Param time query string true "Reservation time (HH:MM)"
// @Param guests query int false "Party size (default 1)"
// @Success 200 {object} controllers.CheckAvailabilitySuccessResponse "data contains availability"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations/availability [get]
func (c *ReservationController) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	slot, err := domain.NewSlot(q.Get("date"), q.Get("time"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}

	guests := 1
	if s := q.Get("guests"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "guests must be an integer")
			return
		}
		guests = v
	}

	availability, err := c.Service.CheckAvailability(r.Context(), slot, guests)
	if err != nil {
		var capErr *domain.CapacityError
		if errors.As(err, &capErr) {
			writeCapacityError(w, capErr)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, availability)
}

// CreateReservationRequest is the request body for POST /reservations.
type CreateReservationRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
}

// Validate implements Validator. Party size bounds against capacity are the
// service's job; only request shape is checked here.
func (c CreateReservationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if c.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(strings.TrimSpace(c.Email)) {
		errs = append(errs, "email must be a valid email address")
	}
	if strings.TrimSpace(c.Phone) == "" {
		errs = append(errs, "phone is required")
	}
	if c.Date == "" {
		errs = append(errs, "date is required")
	}
	if c.Time == "" {
		errs = append(errs, "time is required")
	}
	return errs
}

// CreateReservationResponse is the data payload for POST /reservations (201).
type CreateReservationResponse struct {
	Reservation       *domain.Reservation `json:"reservation"`
	RemainingCapacity int                 `json:"remaining_capacity"`
	Message           string              `json:"message"`
}

// CreateReservationSuccessResponse is the success response envelope for POST /reservations (201).
type CreateReservationSuccessResponse struct {
	Data  CreateReservationResponse `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// CreateReservation godoc
// @Summary Book a table
// @Description Submit a reservation for a date and time slot. The customer record is created or updated by email. Admission is atomic per slot; a full or oversubscribed slot returns 409 with the rejection message.
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body CreateReservationRequest true "Reservation data"
// @Success 201 {object} controllers.CreateReservationSuccessResponse "data contains the booked reservation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slot full or insufficient seats)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations [post]
func (c *ReservationController) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	slot, err := domain.NewSlot(req.Date, req.Time)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}

	result, err := c.Service.Submit(r.Context(), &domain.BookingRequest{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Slot:   slot,
		Guests: req.Guests,
	})
	if err != nil {
		var capErr *domain.CapacityError
		if errors.As(err, &capErr) {
			writeCapacityError(w, capErr)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, CreateReservationResponse{
		Reservation:       result.Reservation,
		RemainingCapacity: result.RemainingAfter,
		Message:           "Table booked successfully! We look forward to serving you.",
	})
}
