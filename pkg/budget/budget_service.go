package budget

import (
	"context"
	"fmt"
)

// Overview is what the budget screen renders: every category plus the
// aggregated totals.
type Overview struct {
	Categories []Category
	Summary    Summary
}

type Service interface {
	GetOverview(ctx context.Context) (Overview, error)
	UpdateCategory(ctx context.Context, c Category) (bool, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetOverview(ctx context.Context) (Overview, error) {
	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load budget categories: %w", err)
	}
	return Overview{
		Categories: categories,
		Summary:    Summarize(categories),
	}, nil
}

func (s *ServiceImpl) UpdateCategory(ctx context.Context, c Category) (bool, error) {
	return s.repo.UpdateCategory(ctx, c)
}
