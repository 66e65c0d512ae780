package auth

import (
	"context"
	"errors"

	"github.com/globetrotter/globetrotter/pkg/user"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Authenticator verifies login credentials and resolves the account they
// belong to.
type Authenticator interface {
	Authenticate(ctx context.Context, email string, password string) (user.User, error)
}

// DemoAuthenticator accepts any credentials and always resolves to the fixed
// demo profile. It backs the demo mode, where no real accounts exist.
type DemoAuthenticator struct{}

func (DemoAuthenticator) Authenticate(ctx context.Context, email string, password string) (user.User, error) {
	return user.DemoUser(), nil
}

// RepoAuthenticator verifies credentials against stored password hashes.
type RepoAuthenticator struct {
	users user.Service
}

func NewRepoAuthenticator(users user.Service) *RepoAuthenticator {
	return &RepoAuthenticator{users: users}
}

func (a *RepoAuthenticator) Authenticate(ctx context.Context, email string, password string) (user.User, error) {
	u, err := a.users.VerifyPassword(ctx, email, password)
	if err != nil {
		return user.User{}, ErrInvalidCredentials
	}
	return u, nil
}
