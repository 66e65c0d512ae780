package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/globetrotter/globetrotter/internal/config"
	"github.com/globetrotter/globetrotter/internal/utils"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenPair is what a successful login or refresh returns to the client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates the JWT pair used for API sessions.
type TokenIssuer struct {
	secret        []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	clock         utils.Clock
}

func NewTokenIssuer(cfg config.Auth, clock utils.Clock) *TokenIssuer {
	return &TokenIssuer{
		secret:        []byte(cfg.Secret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     time.Duration(cfg.AccessTokenMinutes) * time.Minute,
		refreshTTL:    time.Duration(cfg.RefreshTokenDays) * 24 * time.Hour,
		clock:         clock,
	}
}

func (t *TokenIssuer) Issue(userID string, email string) (TokenPair, error) {
	access, err := t.sign(userID, email, t.secret, t.accessTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := t.sign(userID, email, t.refreshSecret, t.refreshTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (t *TokenIssuer) sign(userID string, email string, secret []byte, ttl time.Duration) (string, error) {
	now := t.clock.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateAccess parses an access token and returns its claims.
func (t *TokenIssuer) ValidateAccess(token string) (Claims, error) {
	return t.validate(token, t.secret)
}

// ValidateRefresh parses a refresh token and returns its claims.
func (t *TokenIssuer) ValidateRefresh(token string) (Claims, error) {
	return t.validate(token, t.refreshSecret)
}

func (t *TokenIssuer) validate(token string, secret []byte) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithTimeFunc(t.clock.Now))
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
