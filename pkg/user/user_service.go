package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	GetCurrentUser(ctx context.Context) (User, error)
	CreateUser(ctx context.Context, u User, password string) (User, error)
	GetUser(ctx context.Context, id string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	UpdateCurrentUser(ctx context.Context, u User) (User, error)
	VerifyPassword(ctx context.Context, email string, password string) (User, error)
	StoreRefreshToken(ctx context.Context, id string, token string) error
	RefreshToken(ctx context.Context, id string) (string, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetCurrentUser(ctx context.Context) (User, error) {
	id, err := CurrentID(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.GetUser(ctx, id)
}

func (s *ServiceImpl) CreateUser(ctx context.Context, u User, password string) (User, error) {
	if _, err := s.repo.GetUserByEmail(ctx, u.Email); err == nil {
		return User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	u.ID = uuid.NewString()
	u.PasswordHash = string(hash)
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return User{}, err
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *ServiceImpl) GetUser(ctx context.Context, id string) (User, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return User{}, err
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *ServiceImpl) GetUserByEmail(ctx context.Context, email string) (User, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *ServiceImpl) UpdateCurrentUser(ctx context.Context, u User) (User, error) {
	id, err := CurrentID(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	u.ID = id
	updated, err := s.repo.UpdateUser(ctx, u)
	if err != nil {
		return User{}, err
	}
	updated.PasswordHash = ""
	return updated, nil
}

// VerifyPassword checks credentials against the stored hash and returns the
// matching user. It returns ErrUserNotFound for both an unknown email and a
// wrong password, so callers cannot distinguish the two.
func (s *ServiceImpl) VerifyPassword(ctx context.Context, email string, password string) (User, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return User{}, ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrUserNotFound
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *ServiceImpl) StoreRefreshToken(ctx context.Context, id string, token string) error {
	return s.repo.StoreRefreshToken(ctx, id, token)
}

func (s *ServiceImpl) RefreshToken(ctx context.Context, id string) (string, error) {
	return s.repo.RefreshToken(ctx, id)
}
