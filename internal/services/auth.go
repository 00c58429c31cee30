package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restaurantbooking/internal/domain"
)

const staffSubject = "staff"

type staffAuthService struct {
	passwords   domain.PasswordVerifier
	tokens      domain.TokenIssuer
	tokenExpiry time.Duration

	staffEmail        string
	staffPasswordHash string
}

// NewStaffAuthService authenticates the single staff account configured
// via environment (email plus bcrypt password hash) and issues bearer
// tokens for the management API.
func NewStaffAuthService(passwords domain.PasswordVerifier, tokens domain.TokenIssuer, tokenExpiry time.Duration, staffEmail, staffPasswordHash string) domain.StaffAuthService {
	return &staffAuthService{
		passwords:         passwords,
		tokens:            tokens,
		tokenExpiry:       tokenExpiry,
		staffEmail:        strings.TrimSpace(strings.ToLower(staffEmail)),
		staffPasswordHash: staffPasswordHash,
	}
}

func (s *staffAuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if s.staffEmail == "" || s.staffPasswordHash == "" {
		// Staff login is disabled until credentials are configured.
		return "", domain.ErrInvalidCredentials
	}
	if email != s.staffEmail {
		return "", domain.ErrInvalidCredentials
	}
	if err := s.passwords.Compare(s.staffPasswordHash, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(staffSubject, email, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
