package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/softcybersec/superd/internal/budget"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectBudgetColumns = `
	b.id, b.name, b.reference, b.status, b.school_id,
	b.budget_type_id, b.recipient_id, b.creditor_id, b.comment,
	bt.name AS type_name, r.name AS recipient_name, c.name AS creditor_name
`

const budgetJoins = `
	FROM budgets b
	JOIN budget_types bt ON b.budget_type_id = bt.id
	JOIN recipients r ON b.recipient_id = r.id
	JOIN creditors c ON b.creditor_id = c.id
`

func scanBudget(s scanner) (*budget.Budget, error) {
	var b budget.Budget

	var statusStr string

	if err := s.Scan(
		&b.ID, &b.Name, &b.Reference, &statusStr, &b.SchoolID,
		&b.TypeID, &b.RecipientID, &b.CreditorID, &b.Comment,
		&b.TypeName, &b.RecipientName, &b.CreditorName,
	); err != nil {
		return nil, err
	}

	b.Status = budget.Status(statusStr)

	return &b, nil
}

func (s *Store) CreateBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		INSERT INTO budgets (name, reference, status, school_id, budget_type_id, recipient_id, creditor_id, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		b.Name,
		b.Reference,
		b.Status,
		b.SchoolID,
		b.TypeID,
		b.RecipientID,
		b.CreditorID,
		b.Comment,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("creating budget: %w", err)
	}

	return nil
}

func (s *Store) GetBudget(ctx context.Context, id int64) (*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + budgetJoins + ` WHERE b.id = $1`

	b, err := scanBudget(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting budget: %w", err)
	}

	return b, nil
}

func (s *Store) UpdateBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		UPDATE budgets
		SET name = $1, reference = $2, budget_type_id = $3, recipient_id = $4, creditor_id = $5, comment = $6
		WHERE id = $7
	`

	_, err := s.db.ExecContext(ctx, query,
		b.Name,
		b.Reference,
		b.TypeID,
		b.RecipientID,
		b.CreditorID,
		b.Comment,
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating budget: %w", err)
	}

	return nil
}

func (s *Store) ListOpenBySchool(ctx context.Context, schoolID int64) ([]*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + budgetJoins + `
		WHERE b.school_id = $1 AND b.status = $2
		ORDER BY b.name ASC`

	rows, err := s.db.QueryContext(ctx, query, schoolID, budget.StatusOpen)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.Budget

	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget rows: %w", err)
	}

	return budgets, nil
}
