package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/softcybersec/superd/internal/operation"
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

const selectOperationColumns = `
	id, name, status, budget_id, store, comment,
	quotation, invoice, quotation_date, invoice_date, quotation_amount, invoice_amount
`

// scanOperation reads an operation row in selectOperationColumns order.
func scanOperation(s scanner) (*operation.Operation, error) {
	var op operation.Operation

	var statusStr string

	var quotation, invoice sql.NullString

	var quotationDate, invoiceDate sql.NullTime

	var quotationAmount, invoiceAmount sql.NullInt64

	if err := s.Scan(
		&op.ID, &op.Name, &statusStr, &op.BudgetID, &op.Store, &op.Comment,
		&quotation, &invoice, &quotationDate, &invoiceDate, &quotationAmount, &invoiceAmount,
	); err != nil {
		return nil, err
	}

	op.Status = operation.Status(statusStr)

	if quotation.Valid {
		op.Quotation = &quotation.String
	}

	if invoice.Valid {
		op.Invoice = &invoice.String
	}

	if quotationDate.Valid {
		op.QuotationDate = &quotationDate.Time
	}

	if invoiceDate.Valid {
		op.InvoiceDate = &invoiceDate.Time
	}

	if quotationAmount.Valid {
		op.QuotationAmount = &quotationAmount.Int64
	}

	if invoiceAmount.Valid {
		op.InvoiceAmount = &invoiceAmount.Int64
	}

	return &op, nil
}

func (s *Store) CreateOperation(ctx context.Context, op *operation.Operation) error {
	query := `
		INSERT INTO operations (name, status, budget_id, store, comment,
			quotation, invoice, quotation_date, invoice_date, quotation_amount, invoice_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		op.Name,
		op.Status,
		op.BudgetID,
		op.Store,
		op.Comment,
		op.Quotation,
		op.Invoice,
		op.QuotationDate,
		op.InvoiceDate,
		op.QuotationAmount,
		op.InvoiceAmount,
	).Scan(&op.ID)
	if err != nil {
		return fmt.Errorf("creating operation: %w", err)
	}

	return nil
}

func (s *Store) GetOperation(ctx context.Context, id int64) (*operation.Operation, error) {
	query := `SELECT ` + selectOperationColumns + ` FROM operations WHERE id = $1`

	op, err := scanOperation(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, operation.ErrNotFound
		}

		return nil, fmt.Errorf("getting operation: %w", err)
	}

	return op, nil
}

func (s *Store) UpdateOperation(ctx context.Context, op *operation.Operation) error {
	query := `
		UPDATE operations
		SET name = $1, status = $2, store = $3, comment = $4,
			quotation = $5, invoice = $6, quotation_date = $7, invoice_date = $8,
			quotation_amount = $9, invoice_amount = $10
		WHERE id = $11
	`

	_, err := s.db.ExecContext(ctx, query,
		op.Name,
		op.Status,
		op.Store,
		op.Comment,
		op.Quotation,
		op.Invoice,
		op.QuotationDate,
		op.InvoiceDate,
		op.QuotationAmount,
		op.InvoiceAmount,
		op.ID,
	)
	if err != nil {
		return fmt.Errorf("updating operation: %w", err)
	}

	return nil
}

func (s *Store) DeleteOperation(ctx context.Context, id int64) error {
	query := `DELETE FROM operations WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting operation: %w", err)
	}

	return nil
}

func (s *Store) ListByBudget(ctx context.Context, budgetID int64) ([]*operation.Operation, error) {
	query := `SELECT ` + selectOperationColumns + `
		FROM operations
		WHERE budget_id = $1
		ORDER BY id DESC`

	rows, err := s.db.QueryContext(ctx, query, budgetID)
	if err != nil {
		return nil, fmt.Errorf("listing operations: %w", err)
	}
	defer rows.Close()

	var ops []*operation.Operation

	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning operation: %w", err)
		}

		ops = append(ops, op)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating operation rows: %w", err)
	}

	return ops, nil
}
