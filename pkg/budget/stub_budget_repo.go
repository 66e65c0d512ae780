package budget

import (
	"context"
	"sync"
)

type StubBudgetRepo struct {
	mu         sync.RWMutex
	categories []Category
}

func NewStubBudgetRepo() *StubBudgetRepo {
	return &StubBudgetRepo{}
}

// NewDemoRepo returns a stub preloaded with the built-in categories.
func NewDemoRepo() *StubBudgetRepo {
	return &StubBudgetRepo{categories: Fixtures()}
}

func (s *StubBudgetRepo) GetCategories(ctx context.Context) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	categories := make([]Category, len(s.categories))
	copy(categories, s.categories)
	return categories, nil
}

func (s *StubBudgetRepo) UpdateCategory(ctx context.Context, c Category) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.categories {
		if existing.Name == c.Name {
			s.categories[i] = c
			return true, nil
		}
	}
	return false, nil
}

func (s *StubBudgetRepo) SetCategories(categories []Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = categories
}

func (s *StubBudgetRepo) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = nil
}
