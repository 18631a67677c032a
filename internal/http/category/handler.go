package category

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/softcybersec/superd/internal/category"
	"github.com/softcybersec/superd/internal/http/middleware"
)

type Handler struct {
	categories *category.Service
}

func NewHandler(categories *category.Service) *Handler {
	return &Handler{categories: categories}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/budget-types", h.list(category.KindBudgetType))
	r.Get("/recipients", h.list(category.KindRecipient))
	r.Get("/creditors", h.list(category.KindCreditor))
}

type itemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type itemsResponse struct {
	Items []itemResponse `json:"items"`
}

func (h *Handler) list(kind category.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.SessionFrom(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := h.categories.ListBySchool(r.Context(), kind, sess.SchoolID)
		if err != nil {
			slog.Error("listing category items", "kind", kind, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)

			return
		}

		// No matches is a normal empty result, not an error.
		resp := itemsResponse{Items: make([]itemResponse, len(items))}
		for i, item := range items {
			resp.Items[i] = itemResponse{ID: item.ID, Name: item.Name}
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}
