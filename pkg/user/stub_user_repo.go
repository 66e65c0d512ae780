package user

import (
	"context"
	"sync"
)

type StubUserRepo struct {
	mu            sync.RWMutex
	users         map[string]User
	refreshTokens map[string]string
}

func NewStubUserRepo() *StubUserRepo {
	return &StubUserRepo{
		users:         map[string]User{},
		refreshTokens: map[string]string{},
	}
}

// NewDemoUserRepo returns a stub preloaded with the fixed demo profile.
func NewDemoUserRepo() *StubUserRepo {
	repo := NewStubUserRepo()
	demo := DemoUser()
	repo.users[demo.ID] = demo
	return repo
}

func (s *StubUserRepo) CreateUser(ctx context.Context, u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	s.users[u.ID] = u
	return nil
}

func (s *StubUserRepo) GetUser(ctx context.Context, id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (s *StubUserRepo) GetUserByEmail(ctx context.Context, email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *StubUserRepo) UpdateUser(ctx context.Context, u User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.users[u.ID]
	if !ok {
		return User{}, ErrUserNotFound
	}
	u.PasswordHash = existing.PasswordHash
	s.users[u.ID] = u
	return u, nil
}

func (s *StubUserRepo) StoreRefreshToken(ctx context.Context, id string, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshTokens[id] = token
	return nil
}

func (s *StubUserRepo) RefreshToken(ctx context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.users[id]; !ok {
		return "", ErrUserNotFound
	}
	return s.refreshTokens[id], nil
}

func (s *StubUserRepo) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = map[string]User{}
	s.refreshTokens = map[string]string{}
}
