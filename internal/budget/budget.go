package budget

import (
	"errors"

	"github.com/softcybersec/superd/internal/operation"
)

// Status represents the lifecycle state of a budget. Only OPEN budgets
// show up in listings.
type Status string

const (
	StatusOpen    Status = "OPEN"
	StatusClosed  Status = "CLOSED"
	StatusTrashed Status = "TRASHED"
)

// Budget is a spending envelope owned by one school. The remaining
// balances are never stored; they are recomputed from the operations on
// every read.
type Budget struct {
	ID          int64
	Name        string
	Reference   string
	Status      Status
	SchoolID    int64
	TypeID      int64
	RecipientID int64
	CreditorID  int64
	Comment     string

	// Category names loaded via JOIN for presentation, not persisted
	// on the budget row.
	TypeName      string
	RecipientName string
	CreditorName  string
}

// Summary is the listing view of an open budget with its computed
// balances attached.
type Summary struct {
	Budget  *Budget
	Balance Balance
}

// Detail is the full read view: the budget, its operations (most recent
// first) and the balances computed from them.
type Detail struct {
	Budget     *Budget
	Operations []*operation.Operation
	Balance    Balance
}

var (
	// ErrNotFound is returned when no budget exists for the given id.
	ErrNotFound = errors.New("budget not found")

	// ErrNotOwned is returned when a budget is addressed by a school it
	// does not belong to. Distinct from ErrNotFound so that a
	// cross-tenant access attempt is visible as such in logs.
	ErrNotOwned = errors.New("budget does not belong to this school")
)
