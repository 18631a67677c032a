package user

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type Service struct {
	repo Repository
	salt string
}

// NewService builds a user service. The salt is the server-wide secret
// prefixed to passwords before hashing.
func NewService(repo Repository, salt string) *Service {
	return &Service{repo: repo, salt: salt}
}

// HashPassword returns the lowercase hex SHA-256 digest of salt+password.
// TODO: move to per-user random salts with a memory-hard KDF; requires a
// migration rehashing on first successful login.
func (s *Service) HashPassword(password string) string {
	sum := sha256.Sum256([]byte(s.salt + password))

	return hex.EncodeToString(sum[:])
}

// Create stores a new user with the password hashed.
func (s *Service) Create(ctx context.Context, email, password, firstName, lastName string, schoolID int64) (*User, error) {
	u := &User{
		Email:        email,
		PasswordHash: s.HashPassword(password),
		FirstName:    firstName,
		LastName:     lastName,
		SchoolID:     schoolID,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Authenticate verifies the submitted credentials. An unknown email and
// a wrong password fail identically with ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	submitted := s.HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(submitted), []byte(u.PasswordHash)) != 1 {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
