package sharing

import (
	"errors"
	"time"
)

var (
	ErrLinkNotFound = errors.New("share link not found")
	ErrLinkExpired  = errors.New("share link expired")
)

// Link is a tokenized share of a trip. Anyone holding the token can view the
// trip until the link expires or the owner revokes it.
type Link struct {
	ID        string
	TripID    string
	UserID    string
	Token     string
	ExpiresAt time.Time
}

func (l Link) Expired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}
