package trip

import (
	"context"
	"sync"
)

// StubTripRepo keeps trips in insertion order, which the calendar lookup and
// the trips screen both rely on.
type StubTripRepo struct {
	mu    sync.RWMutex
	trips []Trip
}

func NewStubTripRepo() *StubTripRepo {
	return &StubTripRepo{}
}

// NewDemoRepo returns a stub preloaded with the demo trips and the community
// trips shared by other travellers.
func NewDemoRepo() *StubTripRepo {
	repo := NewStubTripRepo()
	repo.trips = append(repo.trips, Fixtures()...)
	repo.trips = append(repo.trips, CommunityFixtures()...)
	return repo
}

func (s *StubTripRepo) Store(ctx context.Context, t Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips = append(s.trips, t)
	return nil
}

func (s *StubTripRepo) GetTrip(ctx context.Context, id string) (Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return Trip{}, ErrTripNotFound
}

func (s *StubTripRepo) GetByUser(ctx context.Context, userID string) ([]Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var trips []Trip
	for _, t := range s.trips {
		if t.UserID == userID {
			trips = append(trips, t)
		}
	}
	return trips, nil
}

func (s *StubTripRepo) GetShared(ctx context.Context) ([]Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var trips []Trip
	for _, t := range s.trips {
		if t.Shared {
			trips = append(trips, t)
		}
	}
	return trips, nil
}

func (s *StubTripRepo) Update(ctx context.Context, t Trip) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.trips {
		if existing.ID == t.ID {
			s.trips[i] = t
			return true, nil
		}
	}
	return false, nil
}

func (s *StubTripRepo) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.trips {
		if t.ID == id {
			s.trips = append(s.trips[:i], s.trips[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubTripRepo) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips = nil
}
