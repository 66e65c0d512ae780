package sharing

import (
	"context"
	"sync"
)

// RepoStub is an in-memory Repo used in demo mode and in tests.
type RepoStub struct {
	mu    sync.RWMutex
	links map[string]Link
}

func NewStubRepo() *RepoStub {
	return &RepoStub{links: map[string]Link{}}
}

func (s *RepoStub) Store(ctx context.Context, l Link) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links[l.ID] = l
	return nil
}

func (s *RepoStub) GetLink(ctx context.Context, id string) (Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l, ok := s.links[id]; ok {
		return l, nil
	}
	return Link{}, ErrLinkNotFound
}

func (s *RepoStub) GetByToken(ctx context.Context, token string) (Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.links {
		if l.Token == token {
			return l, nil
		}
	}
	return Link{}, ErrLinkNotFound
}

func (s *RepoStub) GetByTrip(ctx context.Context, tripID string) ([]Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var links []Link
	for _, l := range s.links {
		if l.TripID == tripID {
			links = append(links, l)
		}
	}
	return links, nil
}

func (s *RepoStub) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.links[id]; !ok {
		return false, nil
	}
	delete(s.links, id)
	return true, nil
}

func (s *RepoStub) DeleteByTrip(ctx context.Context, tripID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, l := range s.links {
		if l.TripID == tripID {
			delete(s.links, id)
		}
	}
	return nil
}

func (s *RepoStub) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links = map[string]Link{}
}
