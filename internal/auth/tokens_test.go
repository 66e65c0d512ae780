package auth

import (
	"testing"
	"time"

	"github.com/globetrotter/globetrotter/internal/config"
	"github.com/globetrotter/globetrotter/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer() (*TokenIssuer, *utils.MockClock) {
	clock := &utils.MockClock{FixedNow: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)}
	issuer := NewTokenIssuer(config.Auth{
		Secret:             "test-secret",
		RefreshSecret:      "test-refresh-secret",
		AccessTokenMinutes: 15,
		RefreshTokenDays:   7,
	}, clock)
	return issuer, clock
}

func TestIssueAndValidate(t *testing.T) {
	issuer, _ := newTestIssuer()

	pair, err := issuer.Issue("user-1", "alex@globetrotter.com")
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := issuer.ValidateAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "alex@globetrotter.com", claims.Email)

	refreshClaims, err := issuer.ValidateRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refreshClaims.Subject)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	issuer, _ := newTestIssuer()

	pair, err := issuer.Issue("user-1", "alex@globetrotter.com")
	require.NoError(t, err)

	_, err = issuer.ValidateAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.ValidateRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessTokenExpires(t *testing.T) {
	issuer, clock := newTestIssuer()

	pair, err := issuer.Issue("user-1", "alex@globetrotter.com")
	require.NoError(t, err)

	clock.SetNow(clock.FixedNow.Add(16 * time.Minute))
	_, err = issuer.ValidateAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// refresh token outlives the access token
	_, err = issuer.ValidateRefresh(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestValidateGarbage(t *testing.T) {
	issuer, _ := newTestIssuer()

	_, err := issuer.ValidateAccess("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDifferentSecretRejected(t *testing.T) {
	issuer, clock := newTestIssuer()
	other := NewTokenIssuer(config.Auth{
		Secret:             "another-secret",
		RefreshSecret:      "another-refresh-secret",
		AccessTokenMinutes: 15,
		RefreshTokenDays:   7,
	}, clock)

	pair, err := other.Issue("user-1", "alex@globetrotter.com")
	require.NoError(t, err)

	_, err = issuer.ValidateAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
