package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/softcybersec/superd/internal/school"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateSchool(ctx context.Context, sc *school.School) error {
	query := `INSERT INTO schools (reference, name) VALUES ($1, $2) RETURNING id`

	if err := s.db.QueryRowContext(ctx, query, sc.Reference, sc.Name).Scan(&sc.ID); err != nil {
		return fmt.Errorf("creating school: %w", err)
	}

	return nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (*school.School, error) {
	return s.get(ctx, `SELECT id, reference, name FROM schools WHERE id = $1`, id)
}

func (s *Store) GetByReference(ctx context.Context, reference string) (*school.School, error) {
	return s.get(ctx, `SELECT id, reference, name FROM schools WHERE reference = $1`, reference)
}

func (s *Store) get(ctx context.Context, query string, arg any) (*school.School, error) {
	var sc school.School

	err := s.db.QueryRowContext(ctx, query, arg).Scan(&sc.ID, &sc.Reference, &sc.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, school.ErrNotFound
		}

		return nil, fmt.Errorf("getting school: %w", err)
	}

	return &sc, nil
}
