package user_test

import (
	"context"
	"testing"

	"github.com/globetrotter/globetrotter/internal/test_utils"
	"github.com/globetrotter/globetrotter/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoCreateAndGetUser(t *testing.T) {
	repo := user.NewRepo(test_utils.SetupTestDB(t))
	ctx := context.Background()

	u := user.User{ID: "user-42", Name: "Priya Shah", Email: "priya@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.CreateUser(ctx, u))

	byID, err := repo.GetUser(ctx, "user-42")
	require.NoError(t, err)
	assert.Equal(t, "Priya Shah", byID.Name)

	byEmail, err := repo.GetUserByEmail(ctx, "priya@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-42", byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)
}

func TestRepoGetUserNotFound(t *testing.T) {
	repo := user.NewRepo(test_utils.SetupTestDB(t))

	_, err := repo.GetUser(context.Background(), "user-404")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestRepoUpdateUser(t *testing.T) {
	repo := user.NewRepo(test_utils.SetupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, user.User{ID: "user-42", Name: "Priya Shah", Email: "priya@example.com"}))

	updated, err := repo.UpdateUser(ctx, user.User{ID: "user-42", Name: "Priya S.", Email: "priya@example.com", Avatar: "PS"})
	require.NoError(t, err)
	assert.Equal(t, "Priya S.", updated.Name)

	stored, err := repo.GetUser(ctx, "user-42")
	require.NoError(t, err)
	assert.Equal(t, "PS", stored.Avatar)
}

func TestRepoRefreshTokenRoundTrip(t *testing.T) {
	repo := user.NewRepo(test_utils.SetupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, user.User{ID: "user-42", Name: "Priya Shah", Email: "priya@example.com"}))
	require.NoError(t, repo.StoreRefreshToken(ctx, "user-42", "token-abc"))

	token, err := repo.RefreshToken(ctx, "user-42")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
}
