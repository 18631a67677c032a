package category

import "errors"

// Kind selects one of the three parallel classification tables attached
// to budgets.
type Kind string

const (
	KindBudgetType Kind = "budget_type"
	KindRecipient  Kind = "recipient"
	KindCreditor   Kind = "creditor"
)

// Item is a classification tag scoped to one school. Names are unique
// per (school, kind), not globally.
type Item struct {
	ID       int64
	Name     string
	SchoolID int64
}

// ErrNotFound is returned when no item exists for the given filter.
var ErrNotFound = errors.New("category item not found")

// UnknownNameError reports a category name that does not resolve for the
// school it was looked up in.
type UnknownNameError struct {
	Kind Kind
	Name string
}

func (e *UnknownNameError) Error() string {
	return "no " + string(e.Kind) + " named " + e.Name + " for this school"
}

func (e *UnknownNameError) Unwrap() error { return ErrNotFound }
