package users

import "time"

// User is a domain entity representing a registered account.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
