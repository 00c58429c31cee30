package domain

import (
	"context"
	"time"
)

// TokenIssuer issues tokens (e.g. JWT) for an authenticated staff member.
type TokenIssuer interface {
	Issue(subject, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// PasswordVerifier compares a stored hash against a candidate password.
type PasswordVerifier interface {
	Compare(hash, password string) error
}

// StaffAuthService authenticates staff members for the management API.
type StaffAuthService interface {
	// Login returns a bearer token, or ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
}
