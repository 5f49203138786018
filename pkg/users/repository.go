package users

import (
	"context"
	"errors"
)

// Common errors used by repositories/use cases
var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Repository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
type Repository interface {
	// Create inserts the user and assigns its ID. Returns ErrEmailTaken
	// when the email column's unique constraint rejects the insert.
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	List(ctx context.Context) ([]User, error)
}
