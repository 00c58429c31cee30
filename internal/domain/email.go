package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ReservationEmailData holds data for the staff alert and customer
// confirmation emails sent after a reservation is committed.
type ReservationEmailData struct {
	Reference     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          string // formatted for display, e.g. "November 25, 2025"
	Time          string // formatted for display, e.g. "07:00 PM"
	Guests        int

	RestaurantName    string
	RestaurantPhone   string
	RestaurantAddress string
	RestaurantEmail   string
}

// RestaurantInfo is the restaurant identity stamped into outgoing emails.
type RestaurantInfo struct {
	Name    string
	Phone   string
	Address string
	Email   string
}

// NotificationResult reports per-recipient delivery of the post-commit
// emails. A false value means delivery failed and was logged; it never
// aborts or unwinds the reservation itself.
type NotificationResult struct {
	StaffDelivered    bool `json:"staff_delivered"`
	CustomerDelivered bool `json:"customer_delivered"`
}

// EmailService defines the contract for sending domain-level emails.
// SendReservationAlerts is best-effort by design: it returns delivery
// status rather than an error.
type EmailService interface {
	SendReservationAlerts(ctx context.Context, data *ReservationEmailData) NotificationResult
}
