package activity

import (
	"context"
	"sync"
)

type RepoStub struct {
	mu         sync.RWMutex
	activities []Activity
}

func NewRepoStub() *RepoStub {
	return &RepoStub{}
}

// NewDemoRepo returns a stub preloaded with the built-in activity catalog.
func NewDemoRepo() *RepoStub {
	return &RepoStub{activities: Fixtures()}
}

func (r *RepoStub) GetAll(ctx context.Context) ([]Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	activities := make([]Activity, len(r.activities))
	copy(activities, r.activities)
	return activities, nil
}

func (r *RepoStub) GetActivity(ctx context.Context, id string) (Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.activities {
		if a.ID == id {
			return a, nil
		}
	}
	return Activity{}, ErrActivityNotFound
}

func (r *RepoStub) GetByCity(ctx context.Context, cityID string) ([]Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []Activity
	for _, a := range r.activities {
		if a.CityID == cityID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (r *RepoStub) Add(a Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = append(r.activities, a)
}

func (r *RepoStub) Cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = nil
}
