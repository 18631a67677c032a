package budget

import (
	"context"
	"sort"

	"github.com/softcybersec/superd/internal/category"
	"github.com/softcybersec/superd/internal/operation"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=budget
type Repository interface {
	CreateBudget(ctx context.Context, b *Budget) error
	GetBudget(ctx context.Context, id int64) (*Budget, error)
	UpdateBudget(ctx context.Context, b *Budget) error
	ListOpenBySchool(ctx context.Context, schoolID int64) ([]*Budget, error)
}

// CategoryResolver maps client-supplied category names to the school's
// items. Satisfied by *category.Service.
type CategoryResolver interface {
	Resolve(ctx context.Context, kind category.Kind, schoolID int64, name string) (*category.Item, error)
}

// OperationLister loads the operations a balance is computed from.
// Satisfied by *operation.Service.
type OperationLister interface {
	ListByBudget(ctx context.Context, budgetID int64) ([]*operation.Operation, error)
}

type Service struct {
	repo       Repository
	categories CategoryResolver
	operations OperationLister
}

func NewService(repo Repository, categories CategoryResolver, operations OperationLister) *Service {
	return &Service{repo: repo, categories: categories, operations: operations}
}

type CreateParams struct {
	Name          string
	Reference     string
	TypeName      string
	RecipientName string
	CreditorName  string
	Comment       string
}

// resolveCategories maps the three category names to ids scoped to the
// school. All three must resolve before anything is written.
func (s *Service) resolveCategories(ctx context.Context, schoolID int64, p CreateParams) (typeID, recipientID, creditorID int64, err error) {
	budgetType, err := s.categories.Resolve(ctx, category.KindBudgetType, schoolID, p.TypeName)
	if err != nil {
		return 0, 0, 0, err
	}

	recipient, err := s.categories.Resolve(ctx, category.KindRecipient, schoolID, p.RecipientName)
	if err != nil {
		return 0, 0, 0, err
	}

	creditor, err := s.categories.Resolve(ctx, category.KindCreditor, schoolID, p.CreditorName)
	if err != nil {
		return 0, 0, 0, err
	}

	return budgetType.ID, recipient.ID, creditor.ID, nil
}

// Create inserts a new OPEN budget for the school and returns its id.
func (s *Service) Create(ctx context.Context, schoolID int64, params CreateParams) (int64, error) {
	typeID, recipientID, creditorID, err := s.resolveCategories(ctx, schoolID, params)
	if err != nil {
		return 0, err
	}

	b := &Budget{
		Name:        params.Name,
		Reference:   params.Reference,
		Status:      StatusOpen,
		SchoolID:    schoolID,
		TypeID:      typeID,
		RecipientID: recipientID,
		CreditorID:  creditorID,
		Comment:     params.Comment,
	}
	if err := s.repo.CreateBudget(ctx, b); err != nil {
		return 0, err
	}

	return b.ID, nil
}

// Update overwrites the mutable fields of a budget. The budget must
// belong to the given school; on an ownership violation the stored row
// is left untouched. Id and school never change.
func (s *Service) Update(ctx context.Context, schoolID, budgetID int64, params CreateParams) error {
	b, err := s.repo.GetBudget(ctx, budgetID)
	if err != nil {
		return err
	}

	if b.SchoolID != schoolID {
		return ErrNotOwned
	}

	typeID, recipientID, creditorID, err := s.resolveCategories(ctx, schoolID, params)
	if err != nil {
		return err
	}

	b.Name = params.Name
	b.Reference = params.Reference
	b.TypeID = typeID
	b.RecipientID = recipientID
	b.CreditorID = creditorID
	b.Comment = params.Comment

	return s.repo.UpdateBudget(ctx, b)
}

// Summaries returns the school's OPEN budgets sorted by name, each with
// its balances recomputed from the operation list.
func (s *Service) Summaries(ctx context.Context, schoolID int64) ([]*Summary, error) {
	budgets, err := s.repo.ListOpenBySchool(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	sort.Slice(budgets, func(i, j int) bool { return budgets[i].Name < budgets[j].Name })

	summaries := make([]*Summary, 0, len(budgets))

	for _, b := range budgets {
		ops, err := s.operations.ListByBudget(ctx, b.ID)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, &Summary{Budget: b, Balance: ComputeBalance(ops)})
	}

	return summaries, nil
}

// Get loads one budget with its operations and computed balances.
func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	b, err := s.repo.GetBudget(ctx, id)
	if err != nil {
		return nil, err
	}

	ops, err := s.operations.ListByBudget(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Detail{Budget: b, Operations: ops, Balance: ComputeBalance(ops)}, nil
}

// GetOwned is Get plus the tenancy check used by every budget-scoped
// HTTP route.
func (s *Service) GetOwned(ctx context.Context, id, schoolID int64) (*Detail, error) {
	det, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if det.Budget.SchoolID != schoolID {
		return nil, ErrNotOwned
	}

	return det, nil
}
