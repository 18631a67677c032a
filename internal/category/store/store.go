package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/softcybersec/superd/internal/category"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// tableByKind keeps kinds out of SQL string interpolation; an unknown
// kind is a programming error.
var tableByKind = map[category.Kind]string{
	category.KindBudgetType: "budget_types",
	category.KindRecipient:  "recipients",
	category.KindCreditor:   "creditors",
}

func table(kind category.Kind) (string, error) {
	name, ok := tableByKind[kind]
	if !ok {
		return "", fmt.Errorf("unknown category kind %q", kind)
	}

	return name, nil
}

func (s *Store) CreateItem(ctx context.Context, kind category.Kind, item *category.Item) error {
	tbl, err := table(kind)
	if err != nil {
		return err
	}

	query := `INSERT INTO ` + tbl + ` (name, school_id) VALUES ($1, $2) RETURNING id`

	if err := s.db.QueryRowContext(ctx, query, item.Name, item.SchoolID).Scan(&item.ID); err != nil {
		return fmt.Errorf("creating %s: %w", kind, err)
	}

	return nil
}

func (s *Store) GetByName(ctx context.Context, kind category.Kind, schoolID int64, name string) (*category.Item, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, name, school_id FROM ` + tbl + ` WHERE school_id = $1 AND name = $2`

	var item category.Item
	if err := s.db.QueryRowContext(ctx, query, schoolID, name).Scan(&item.ID, &item.Name, &item.SchoolID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting %s by name: %w", kind, err)
	}

	return &item, nil
}

func (s *Store) ListBySchool(ctx context.Context, kind category.Kind, schoolID int64) ([]*category.Item, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, name, school_id FROM ` + tbl + ` WHERE school_id = $1 ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", kind, err)
	}
	defer rows.Close()

	var items []*category.Item

	for rows.Next() {
		var item category.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.SchoolID); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", kind, err)
		}

		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", kind, err)
	}

	return items, nil
}
