package operation

import "errors"

var (
	// ErrNotFound is returned when no operation exists for the given id.
	ErrNotFound = errors.New("operation not found")

	// ErrWrongBudget is returned when an operation is addressed through a
	// budget it does not belong to.
	ErrWrongBudget = errors.New("operation does not belong to this budget")

	// ErrNoAmount is returned when an operation carries neither a
	// quotation nor an invoice leg.
	ErrNoAmount = errors.New("operation requires a quotation or invoice amount")
)
