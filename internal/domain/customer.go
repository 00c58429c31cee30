package domain

import (
	"context"
	"time"
)

// Customer represents a booking customer, identified by a unique email.
// Name and phone are mutable: a repeat booking with the same email
// overwrites them (latest submission wins).
// swagger:model Customer
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCustomer returns a new Customer with the given fields. ID is typically set by the repository on create.
func NewCustomer(name, email, phone string, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// CustomerRepository defines the interface for customer storage
type CustomerRepository interface {
	// UpsertByEmail creates the customer or, when the email already exists,
	// updates name and phone on the existing row. ID (and CreatedAt for an
	// existing row) are populated on the passed customer.
	UpsertByEmail(ctx context.Context, c *Customer) error
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
}
