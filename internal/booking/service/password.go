package service

//go:generate mockgen -destination=../../mocks/mock_password_verifier.go -package=mocks github.com/Hypereqqq/backend-good-game-vr/internal/booking/service PasswordVerifier

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier checks a plaintext password against a stored salted hash.
// Implementations must not log or retain either input.
type PasswordVerifier interface {
	Verify(plaintext, storedHash string) bool
}

// BcryptVerifier verifies against bcrypt hashes. The salt is embedded in the
// stored hash and the comparison is constant-time inside bcrypt itself.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
