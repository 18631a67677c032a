package user

import "errors"

// User is a school staff account. The password hash never leaves the
// server; it is excluded from JSON serialization.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	SchoolID     int64  `json:"-"`
}

var (
	// ErrNotFound is returned when no user exists for the given filter.
	ErrNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned on a failed login. It carries no
	// detail about which of email or password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
