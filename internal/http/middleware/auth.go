// Package middleware carries the HTTP middleware shared by the API
// routes, most notably the session-token authentication gate.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/softcybersec/superd/internal/session"
)

// TokenHeader is the request header carrying the bearer session token.
const TokenHeader = "token"

type contextKey int

const sessionKey contextKey = iota

// Auth resolves the session token on every request and stores the
// caller's identity in the request context. Requests with a missing,
// unknown or expired token get a bare 401; a cache outage fails the
// request with 503 instead of taking the process down.
func Auth(sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			s, err := sessions.Get(r.Context(), token)
			if err != nil {
				if errors.Is(err, session.ErrUnavailable) {
					slog.Error("session store unavailable", "error", err)
					http.Error(w, "service unavailable", http.StatusServiceUnavailable)

					return
				}

				http.Error(w, "unauthorized", http.StatusUnauthorized)

				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}

// WithSession returns a context carrying the caller's session.
func WithSession(ctx context.Context, s session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFrom extracts the caller's session placed by Auth.
func SessionFrom(ctx context.Context) (session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(session.Session)

	return s, ok
}
