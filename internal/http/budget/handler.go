package budget

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/softcybersec/superd/internal/budget"
	"github.com/softcybersec/superd/internal/category"
	"github.com/softcybersec/superd/internal/http/middleware"
	"github.com/softcybersec/superd/internal/operation"
	"github.com/softcybersec/superd/internal/session"
)

type Handler struct {
	budgets    *budget.Service
	operations *operation.Service
}

func NewHandler(budgets *budget.Service, operations *operation.Service) *Handler {
	return &Handler{budgets: budgets, operations: operations}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/home", h.home)

	r.Route("/budget", func(r chi.Router) {
		r.Post("/", h.create)
		r.Put("/", h.update)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.get)

			r.Route("/operations", func(r chi.Router) {
				r.Post("/", h.createOperation)
				r.Put("/", h.updateOperation)
				r.Delete("/", h.deleteOperation)
			})
		})
	})
}

// writeError translates the domain error taxonomy into status codes.
// Storage errors are logged in full and surfaced generically.
func writeError(w http.ResponseWriter, err error) {
	var invalidDate *operation.InvalidDateError

	switch {
	case errors.Is(err, budget.ErrNotFound), errors.Is(err, operation.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, budget.ErrNotOwned), errors.Is(err, operation.ErrWrongBudget):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, category.ErrNotFound), errors.Is(err, operation.ErrNoAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &invalidDate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("budget request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// ownedBudget loads the budget named in the URL and verifies it belongs
// to the caller's school. Every budget-scoped route goes through here.
func (h *Handler) ownedBudget(w http.ResponseWriter, r *http.Request) (*budget.Detail, session.Session, bool) {
	sess, ok := middleware.SessionFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, session.Session{}, false
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid budget id", http.StatusBadRequest)
		return nil, session.Session{}, false
	}

	det, err := h.budgets.GetOwned(r.Context(), id, sess.SchoolID)
	if err != nil {
		writeError(w, err)
		return nil, session.Session{}, false
	}

	return det, sess, true
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	summaries, err := h.budgets.Summaries(r.Context(), sess.SchoolID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toHomeResponse(summaries))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	det, _, ok := h.ownedBudget(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, budgetEnvelope{Budget: toDetailResponse(det)})
}

type budgetRequest struct {
	ID         int64  `json:"id,omitempty"`
	Name       string `json:"name"`
	Reference  string `json:"reference"`
	BudgetType string `json:"budgetType"`
	Recipient  string `json:"recipient"`
	Creditor   string `json:"creditor"`
	Comment    string `json:"comment"`
}

func (req budgetRequest) params() budget.CreateParams {
	return budget.CreateParams{
		Name:          req.Name,
		Reference:     req.Reference,
		TypeName:      req.BudgetType,
		RecipientName: req.Recipient,
		CreditorName:  req.Creditor,
		Comment:       req.Comment,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.budgets.Create(r.Context(), sess.SchoolID, req.params())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.budgets.Update(r.Context(), sess.SchoolID, req.ID, req.params()); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type operationRequest struct {
	ID              int64   `json:"id,omitempty"`
	Name            string  `json:"name"`
	Store           string  `json:"store"`
	Comment         string  `json:"comment"`
	Quotation       *string `json:"quotation"`
	Invoice         *string `json:"invoice"`
	QuotationDate   *string `json:"quotationDate"`
	InvoiceDate     *string `json:"invoiceDate"`
	QuotationAmount *int64  `json:"quotationAmount"`
	InvoiceAmount   *int64  `json:"invoiceAmount"`
}

func (req operationRequest) params() (operation.Params, error) {
	p := operation.Params{
		Name:            req.Name,
		Store:           req.Store,
		Comment:         req.Comment,
		Quotation:       req.Quotation,
		Invoice:         req.Invoice,
		QuotationAmount: req.QuotationAmount,
		InvoiceAmount:   req.InvoiceAmount,
	}

	if req.QuotationDate != nil {
		t, err := operation.ParseDate(*req.QuotationDate)
		if err != nil {
			return operation.Params{}, err
		}

		p.QuotationDate = &t
	}

	if req.InvoiceDate != nil {
		t, err := operation.ParseDate(*req.InvoiceDate)
		if err != nil {
			return operation.Params{}, err
		}

		p.InvoiceDate = &t
	}

	return p, nil
}

func (h *Handler) createOperation(w http.ResponseWriter, r *http.Request) {
	det, _, ok := h.ownedBudget(w, r)
	if !ok {
		return
	}

	var req operationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params, err := req.params()
	if err != nil {
		writeError(w, err)
		return
	}

	op, err := h.operations.Create(r.Context(), det.Budget.ID, params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOperationResponse(op))
}

func (h *Handler) updateOperation(w http.ResponseWriter, r *http.Request) {
	det, _, ok := h.ownedBudget(w, r)
	if !ok {
		return
	}

	var req operationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params, err := req.params()
	if err != nil {
		writeError(w, err)
		return
	}

	op, err := h.operations.Update(r.Context(), det.Budget.ID, req.ID, params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOperationResponse(op))
}

type deleteOperationRequest struct {
	ID int64 `json:"id"`
}

func (h *Handler) deleteOperation(w http.ResponseWriter, r *http.Request) {
	det, _, ok := h.ownedBudget(w, r)
	if !ok {
		return
	}

	var req deleteOperationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.operations.Delete(r.Context(), det.Budget.ID, req.ID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
