package services

import (
	"context"
	"log/slog"

	"restaurantbooking/internal/domain"
)

type emailService struct {
	mailer     domain.Mailer
	renderer   domain.EmailTemplateRenderer
	logger     *slog.Logger
	staffEmail string
	restaurant domain.RestaurantInfo
}

// NewEmailService returns an EmailService that uses the given Mailer and
// template renderer. staffEmail receives the staff alert for every new
// reservation; restaurant identity is stamped into every outgoing message.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger, staffEmail string, restaurant domain.RestaurantInfo) domain.EmailService {
	return &emailService{
		mailer:     mailer,
		renderer:   renderer,
		logger:     logger,
		staffEmail: staffEmail,
		restaurant: restaurant,
	}
}

// SendReservationAlerts sends the staff alert and the customer confirmation
// independently: a failure on one recipient never blocks the other, and
// neither failure is surfaced as an error. Delivery status is returned for
// logging by the caller.
func (s *emailService) SendReservationAlerts(ctx context.Context, data *domain.ReservationEmailData) domain.NotificationResult {
	result := domain.NotificationResult{}
	if data == nil {
		s.logger.ErrorContext(ctx, "reservation email data is nil")
		return result
	}

	data.RestaurantName = s.restaurant.Name
	data.RestaurantPhone = s.restaurant.Phone
	data.RestaurantAddress = s.restaurant.Address
	data.RestaurantEmail = s.restaurant.Email

	if s.staffEmail != "" {
		result.StaffDelivered = s.send(ctx, "reservation_staff", s.staffEmail, data)
	}
	result.CustomerDelivered = s.send(ctx, "reservation_confirmation", data.CustomerEmail, data)

	s.logger.InfoContext(ctx, "reservation notifications sent",
		"reference", data.Reference,
		"staff_delivered", result.StaffDelivered,
		"customer_delivered", result.CustomerDelivered,
	)
	return result
}

func (s *emailService) send(ctx context.Context, template, to string, data *domain.ReservationEmailData) bool {
	subject, htmlBody, textBody, err := s.renderer.Render(template, data)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to render email template", "template", template, "err", err)
		return false
	}
	if err := s.mailer.Send(to, subject, htmlBody, textBody); err != nil {
		s.logger.ErrorContext(ctx, "failed to send email", "template", template, "to", to, "err", err)
		return false
	}
	return true
}
