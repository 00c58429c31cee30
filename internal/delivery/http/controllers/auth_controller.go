package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "restaurantbooking/internal/delivery/http/helpers"
	"restaurantbooking/internal/domain"
)

// StaffLoginRequest is the request body for POST /auth/staff/login
type StaffLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l StaffLoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// StaffLoginResponse is the response body for POST /auth/staff/login
type StaffLoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// StaffLoginSuccessResponse is the success response envelope for POST /auth/staff/login (200).
type StaffLoginSuccessResponse struct {
	Data  StaffLoginResponse `json:"data"`
	Error *h.APIError        `json:"error"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.StaffAuthService
}

func NewAuthController(logger *slog.Logger, svc domain.StaffAuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Staff log in
// @Description Authenticate the staff account with email and password. Returns a Bearer JWT for the staff management endpoints.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body StaffLoginRequest true "Login credentials"
// @Success 200 {object} controllers.StaffLoginSuccessResponse "data contains token and token_type"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/staff/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req StaffLoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid credentials")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, StaffLoginResponse{Token: token, TokenType: "Bearer"})
}
