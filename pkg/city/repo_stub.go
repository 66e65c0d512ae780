package city

import (
	"context"
	"sync"
)

type RepoStub struct {
	mu     sync.RWMutex
	cities []City
}

func NewRepoStub() *RepoStub {
	return &RepoStub{}
}

// NewDemoRepo returns a stub preloaded with the built-in city catalog.
func NewDemoRepo() *RepoStub {
	return &RepoStub{cities: Fixtures()}
}

func (r *RepoStub) GetAll(ctx context.Context) ([]City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cities := make([]City, len(r.cities))
	copy(cities, r.cities)
	return cities, nil
}

func (r *RepoStub) GetCity(ctx context.Context, id string) (City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.cities {
		if c.ID == id {
			return c, nil
		}
	}
	return City{}, ErrCityNotFound
}

func (r *RepoStub) Add(c City) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cities = append(r.cities, c)
}

func (r *RepoStub) Cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cities = nil
}
