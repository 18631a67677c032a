package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/softcybersec/superd/internal/http/middleware"
	"github.com/softcybersec/superd/internal/school"
	"github.com/softcybersec/superd/internal/session"
	"github.com/softcybersec/superd/internal/user"
)

type Handler struct {
	users    *user.Service
	schools  *school.Service
	sessions session.Store
}

func NewHandler(users *user.Service, schools *school.Service, sessions session.Store) *Handler {
	return &Handler{users: users, schools: schools, sessions: sessions}
}

// Routes are mounted outside the auth middleware: login has no session
// yet and logout must succeed for stale tokens too.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string         `json:"token"`
	User   *user.User     `json:"user"`
	School *school.School `json:"school"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			// No detail about which of email/password was wrong.
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		slog.Error("login failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	sc, err := h.schools.Get(r.Context(), u.SchoolID)
	if err != nil {
		slog.Error("loading school for login", "school_id", u.SchoolID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	token, err := h.sessions.Create(r.Context(), u.ID, sc.ID)
	if err != nil {
		slog.Error("creating session", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(loginResponse{Token: token, User: u, School: sc}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(middleware.TokenHeader)
	if token != "" {
		if err := h.sessions.Remove(r.Context(), token); err != nil {
			// Logout is best effort; the token expires on its own.
			slog.Error("removing session", "error", err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
