package auth

import (
	"golang.org/x/crypto/bcrypt"

	"restaurantbooking/internal/domain"
)

type bcryptVerifier struct{}

// NewBcryptVerifier returns a PasswordVerifier that compares bcrypt hashes.
// Hashes are produced out of band (e.g. htpasswd -nbB) and configured via
// environment, so no Hash method is exposed here.
func NewBcryptVerifier() domain.PasswordVerifier {
	return &bcryptVerifier{}
}

func (v *bcryptVerifier) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
