package category

import (
	"context"
	"errors"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateItem(ctx context.Context, kind Kind, item *Item) error
	GetByName(ctx context.Context, kind Kind, schoolID int64, name string) (*Item, error)
	ListBySchool(ctx context.Context, kind Kind, schoolID int64) ([]*Item, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, kind Kind, schoolID int64, name string) (*Item, error) {
	item := &Item{Name: name, SchoolID: schoolID}
	if err := s.repo.CreateItem(ctx, kind, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Resolve maps a client-supplied name to the school's item of that kind.
// A name with no matching item fails with UnknownNameError; callers must
// not assume presence.
func (s *Service) Resolve(ctx context.Context, kind Kind, schoolID int64, name string) (*Item, error) {
	item, err := s.repo.GetByName(ctx, kind, schoolID, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &UnknownNameError{Kind: kind, Name: name}
		}

		return nil, err
	}

	return item, nil
}

func (s *Service) ListBySchool(ctx context.Context, kind Kind, schoolID int64) ([]*Item, error) {
	return s.repo.ListBySchool(ctx, kind, schoolID)
}
