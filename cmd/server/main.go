package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"restaurantbooking/config"
	_ "restaurantbooking/docs"
	"restaurantbooking/internal/adapters/auth"
	"restaurantbooking/internal/adapters/email"
	"restaurantbooking/internal/adapters/notify"
	httpdelivery "restaurantbooking/internal/delivery/http"
	"restaurantbooking/internal/delivery/http/controllers"
	"restaurantbooking/internal/delivery/http/middleware"
	"restaurantbooking/internal/domain"
	"restaurantbooking/internal/repository/memory"
	"restaurantbooking/internal/repository/postgres"
	"restaurantbooking/internal/services"
)

// @title Restaurant Booking API
// @version 1.0
// @description Menu browsing and table reservation API with per-slot capacity control.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		reservationRepo domain.ReservationRepository
		customerRepo    domain.CustomerRepository
		menuRepo        domain.MenuItemRepository
	)
	switch cfg.Store {
	case "memory":
		logger.Warn("using in-memory store; all data is lost on restart")
		customers := memory.NewCustomerRepository()
		customerRepo = customers
		reservationRepo = memory.NewReservationRepository(customers)
		menuRepo = memory.NewMenuItemRepository()
	default:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("failed to open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err != nil {
			logger.Error("failed to ping database", "err", err)
			os.Exit(1)
		}
		reservationRepo = postgres.NewReservationRepository(db)
		customerRepo = postgres.NewCustomerRepository(db)
		menuRepo = postgres.NewMenuItemRepository(db)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	alertEmail := cfg.ManagerEmail
	if alertEmail == "" {
		alertEmail = cfg.StaffEmail
	}
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger, alertEmail, domain.RestaurantInfo{
		Name:    cfg.RestaurantName,
		Phone:   cfg.RestaurantPhone,
		Address: cfg.RestaurantAddress,
		Email:   cfg.ManagerEmail,
	})

	// With a broker configured, reservation events go through the queue and
	// the worker sends the emails; otherwise they are sent in-process.
	var dispatcher domain.NotificationDispatcher
	if cfg.AMQPUrl != "" {
		dispatcher = notify.NewAMQPDispatcher(cfg.AMQPUrl)
		worker := notify.NewWorker(cfg.AMQPUrl, emailSvc, logger)
		go worker.Run(ctx)
	} else {
		dispatcher = notify.NewDirectDispatcher(emailSvc)
	}

	reservationSvc := services.NewReservationService(reservationRepo, customerRepo, dispatcher, logger, cfg.MaxCapacity)
	menuSvc := services.NewMenuService(menuRepo)
	authSvc := services.NewStaffAuthService(
		auth.NewBcryptVerifier(),
		auth.NewJWTIssuer(cfg.JWTSecret),
		cfg.TokenExpiry,
		cfg.StaffEmail,
		cfg.StaffPasswordHash,
	)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	mux := httpdelivery.NewRouter(
		logger,
		verifier,
		controllers.NewReservationController(logger, reservationSvc),
		controllers.NewMenuController(logger, menuSvc),
		controllers.NewStaffController(logger, reservationSvc),
		controllers.NewAuthController(logger, authSvc),
	)

	var handler http.Handler = mux
	handler = middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "store", cfg.Store)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "err", err)
		}
	}
}
