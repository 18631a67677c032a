// Package session maps opaque bearer tokens to the authenticated user
// and school, with sliding expiry: every successful read extends the
// session by the full TTL.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Session identifies the caller behind a token.
type Session struct {
	UserID   int64
	SchoolID int64
}

var (
	// ErrNotFound is returned for an unknown or expired token.
	ErrNotFound = errors.New("session not found or expired")

	// ErrUnavailable is returned when the backing cache cannot be
	// reached. The request fails; the process does not.
	ErrUnavailable = errors.New("session store unavailable")
)

// Store is the session cache contract shared by the Redis and in-memory
// implementations.
type Store interface {
	// Create generates a fresh unguessable token for the user and
	// stores the mapping with the configured TTL.
	Create(ctx context.Context, userID, schoolID int64) (string, error)

	// Get resolves a token, refreshing its TTL on success.
	Get(ctx context.Context, token string) (Session, error)

	// Remove deletes a token. Removing an unknown token is not an
	// error.
	Remove(ctx context.Context, token string) error
}

// encode/decode is the wire form used by the Redis store: "userID:schoolID".

func encode(s Session) string {
	return fmt.Sprintf("%d:%d", s.UserID, s.SchoolID)
}

func decode(value string) (Session, error) {
	userPart, schoolPart, ok := strings.Cut(value, ":")
	if !ok {
		return Session{}, fmt.Errorf("malformed session value %q", value)
	}

	userID, err := strconv.ParseInt(userPart, 10, 64)
	if err != nil {
		return Session{}, fmt.Errorf("malformed session user id %q", userPart)
	}

	schoolID, err := strconv.ParseInt(schoolPart, 10, 64)
	if err != nil {
		return Session{}, fmt.Errorf("malformed session school id %q", schoolPart)
	}

	return Session{UserID: userID, SchoolID: schoolID}, nil
}
