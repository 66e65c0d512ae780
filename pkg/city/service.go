package city

import (
	"context"
)

// Filter narrows the city catalog. Query and tags compose with logical AND;
// within the tag set any match is enough.
type Filter struct {
	Query       string
	Tags        []string
	PopularOnly bool
}

type Service interface {
	Search(ctx context.Context, filter Filter) ([]City, error)
	GetCity(ctx context.Context, id string) (City, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Search(ctx context.Context, filter Filter) ([]City, error) {
	cities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]City, 0, len(cities))
	for _, c := range cities {
		if filter.PopularOnly && !c.Popular {
			continue
		}
		if !c.MatchesQuery(filter.Query) {
			continue
		}
		if !c.HasAnyTag(filter.Tags) {
			continue
		}
		matched = append(matched, c)
	}
	return matched, nil
}

func (s *ServiceImpl) GetCity(ctx context.Context, id string) (City, error) {
	return s.repo.GetCity(ctx, id)
}
