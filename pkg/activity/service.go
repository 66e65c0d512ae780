package activity

import (
	"context"
)

// Filter narrows the activity catalog. Query, categories, and city compose
// with logical AND; within the category set any match is enough.
type Filter struct {
	Query      string
	Categories []string
	CityID     string
}

type Service interface {
	Search(ctx context.Context, filter Filter) ([]Activity, error)
	GetActivity(ctx context.Context, id string) (Activity, error)
	GetByCity(ctx context.Context, cityID string) ([]Activity, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Search(ctx context.Context, filter Filter) ([]Activity, error) {
	activities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]Activity, 0, len(activities))
	for _, a := range activities {
		if filter.CityID != "" && a.CityID != filter.CityID {
			continue
		}
		if !a.MatchesQuery(filter.Query) {
			continue
		}
		if !a.InAnyCategory(filter.Categories) {
			continue
		}
		matched = append(matched, a)
	}
	return matched, nil
}

func (s *ServiceImpl) GetActivity(ctx context.Context, id string) (Activity, error) {
	return s.repo.GetActivity(ctx, id)
}

func (s *ServiceImpl) GetByCity(ctx context.Context, cityID string) ([]Activity, error) {
	return s.repo.GetByCity(ctx, cityID)
}
