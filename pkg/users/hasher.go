package users

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned by Hash when the password exceeds the
// algorithm's input limit (72 bytes for bcrypt); nothing is truncated.
var ErrPasswordTooLong = errors.New("password too long")

// PasswordHasher abstracts the password hashing algorithm so the use case
// stays independent of bcrypt.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext matches the stored hash.
	// A malformed stored hash counts as a mismatch, never an error.
	Verify(password, hash string) bool
}

// BcryptHasher implements PasswordHasher using golang.org/x/crypto/bcrypt.
// Each call salts independently, so hashing the same password twice yields
// two different strings that both verify.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", err
	}
	return string(out), nil
}

func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
