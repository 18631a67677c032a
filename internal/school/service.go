package school

import "context"

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=school
type Repository interface {
	CreateSchool(ctx context.Context, s *School) error
	GetByID(ctx context.Context, id int64) (*School, error)
	GetByReference(ctx context.Context, reference string) (*School, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, reference, name string) (*School, error) {
	sc := &School{Reference: reference, Name: name}
	if err := s.repo.CreateSchool(ctx, sc); err != nil {
		return nil, err
	}

	return sc, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*School, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByReference(ctx context.Context, reference string) (*School, error) {
	return s.repo.GetByReference(ctx, reference)
}
