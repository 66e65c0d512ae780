package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	repo := NewStubUserRepo()
	service := NewService(repo)
	ctx := context.Background()

	created, err := service.CreateUser(ctx, User{Name: "Priya Shah", Email: "priya@example.com"}, "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.PasswordHash)

	stored, err := repo.GetUserByEmail(ctx, "priya@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	service := NewService(NewStubUserRepo())
	ctx := context.Background()

	_, err := service.CreateUser(ctx, User{Name: "Priya Shah", Email: "priya@example.com"}, "secret123")
	require.NoError(t, err)

	_, err = service.CreateUser(ctx, User{Name: "Other", Email: "priya@example.com"}, "different")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestVerifyPassword(t *testing.T) {
	service := NewService(NewStubUserRepo())
	ctx := context.Background()

	created, err := service.CreateUser(ctx, User{Name: "Priya Shah", Email: "priya@example.com"}, "secret123")
	require.NoError(t, err)

	verified, err := service.VerifyPassword(ctx, "priya@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, verified.ID)

	_, err = service.VerifyPassword(ctx, "priya@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = service.VerifyPassword(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateCurrentUser(t *testing.T) {
	service := NewService(NewDemoUserRepo())
	ctx := WithUser(context.Background(), DemoUser())

	updated, err := service.UpdateCurrentUser(ctx, User{Name: "Alex R.", Email: "alex@globetrotter.com"})
	require.NoError(t, err)
	assert.Equal(t, "Alex R.", updated.Name)
	assert.Equal(t, "user-1", updated.ID)
}
