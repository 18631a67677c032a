package operation

import (
	"context"
	"sort"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=operation
type Repository interface {
	CreateOperation(ctx context.Context, op *Operation) error
	GetOperation(ctx context.Context, id int64) (*Operation, error)
	UpdateOperation(ctx context.Context, op *Operation) error
	DeleteOperation(ctx context.Context, id int64) error
	ListByBudget(ctx context.Context, budgetID int64) ([]*Operation, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Params struct {
	Name            string
	Store           string
	Comment         string
	Quotation       *string
	Invoice         *string
	QuotationDate   *time.Time
	InvoiceDate     *time.Time
	QuotationAmount *int64
	InvoiceAmount   *int64
}

// Create records a new operation against the budget. At least one leg
// (quotation or invoice) is required; the status is derived, never taken
// from the caller.
func (s *Service) Create(ctx context.Context, budgetID int64, params Params) (*Operation, error) {
	if params.QuotationAmount == nil && params.InvoiceAmount == nil {
		return nil, ErrNoAmount
	}

	op := &Operation{
		Name:            params.Name,
		Status:          DeriveStatus(params.InvoiceAmount),
		BudgetID:        budgetID,
		Store:           params.Store,
		Comment:         params.Comment,
		Quotation:       params.Quotation,
		Invoice:         params.Invoice,
		QuotationDate:   params.QuotationDate,
		InvoiceDate:     params.InvoiceDate,
		QuotationAmount: params.QuotationAmount,
		InvoiceAmount:   params.InvoiceAmount,
	}
	if err := s.repo.CreateOperation(ctx, op); err != nil {
		return nil, err
	}

	return op, nil
}

// Update overwrites all mutable fields of an operation. The operation
// must belong to the given budget; the status is re-derived so that
// adding or removing an invoice leg flips it consistently.
func (s *Service) Update(ctx context.Context, budgetID, id int64, params Params) (*Operation, error) {
	if params.QuotationAmount == nil && params.InvoiceAmount == nil {
		return nil, ErrNoAmount
	}

	op, err := s.repo.GetOperation(ctx, id)
	if err != nil {
		return nil, err
	}

	if op.BudgetID != budgetID {
		return nil, ErrWrongBudget
	}

	op.Name = params.Name
	op.Status = DeriveStatus(params.InvoiceAmount)
	op.Store = params.Store
	op.Comment = params.Comment
	op.Quotation = params.Quotation
	op.Invoice = params.Invoice
	op.QuotationDate = params.QuotationDate
	op.InvoiceDate = params.InvoiceDate
	op.QuotationAmount = params.QuotationAmount
	op.InvoiceAmount = params.InvoiceAmount

	if err := s.repo.UpdateOperation(ctx, op); err != nil {
		return nil, err
	}

	return op, nil
}

// Delete removes an operation, but only through the budget it belongs
// to. A cross-budget delete is rejected and deletes nothing.
func (s *Service) Delete(ctx context.Context, budgetID, id int64) error {
	op, err := s.repo.GetOperation(ctx, id)
	if err != nil {
		return err
	}

	if op.BudgetID != budgetID {
		return ErrWrongBudget
	}

	return s.repo.DeleteOperation(ctx, id)
}

// ListByBudget returns the budget's operations, most recently created
// first. The ordering is applied here rather than trusted from the
// store, the same way budget listings are name-sorted in their service.
func (s *Service) ListByBudget(ctx context.Context, budgetID int64) ([]*Operation, error) {
	ops, err := s.repo.ListByBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	sort.Slice(ops, func(i, j int) bool { return ops[i].ID > ops[j].ID })

	return ops, nil
}
