package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"restaurantbooking/internal/delivery/http/controllers"
	"restaurantbooking/internal/delivery/http/helpers"
	"restaurantbooking/internal/delivery/http/middleware"
	"restaurantbooking/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	reservationController *controllers.ReservationController,
	menuController *controllers.MenuController,
	staffController *controllers.StaffController,
	authController *controllers.AuthController,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireStaff := middleware.RequireStaff(verifier, logger)

	// Public
	mux.HandleFunc("GET /menu", menuController.BrowseMenu)
	mux.HandleFunc("GET /reservations/availability", reservationController.CheckAvailability)
	mux.HandleFunc("POST /reservations", reservationController.CreateReservation)

	// Auth
	mux.HandleFunc("POST /auth/staff/login", authController.Login)

	// Staff management
	mux.HandleFunc("GET /staff/reservations", requireStaff(staffController.ListReservations))
	mux.HandleFunc("PATCH /staff/reservations/{reservationID}/confirm", requireStaff(staffController.ConfirmReservation))
	mux.HandleFunc("POST /staff/menu/items", requireStaff(menuController.CreateMenuItem))
	mux.HandleFunc("PATCH /staff/menu/items/{itemID}", requireStaff(menuController.UpdateMenuItem))
	mux.HandleFunc("PATCH /staff/menu/items/{itemID}/availability", requireStaff(menuController.SetMenuItemAvailability))

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
