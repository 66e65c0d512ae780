package sharing

import (
	"context"
	"fmt"

	"github.com/globetrotter/globetrotter/internal/event_bus"
	"github.com/globetrotter/globetrotter/internal/utils"
	"github.com/globetrotter/globetrotter/pkg/trip"
	"github.com/globetrotter/globetrotter/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Share links outlive a browser session but not a planning cycle.
const linkTTLDays = 30

type Service interface {
	CreateLink(ctx context.Context, tripID string) (Link, error)
	ListLinks(ctx context.Context, tripID string) ([]Link, error)
	// ResolveToken returns the shared trip for a valid token. It performs no
	// ownership check: tokens are the public entry point.
	ResolveToken(ctx context.Context, token string) (trip.Trip, error)
	RevokeLink(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo  Repo
	trips trip.Repo
	clock utils.Clock
}

// NewService subscribes the repo to trip deletions: links to a trip that no
// longer exists are dropped rather than left dangling.
func NewService(repo Repo, trips trip.Repo, clock utils.Clock, bus *event_bus.EventBus) *ServiceImpl {
	event_bus.SubscribeTyped(bus, event_bus.TripDeletedEvent, func(e event_bus.EventT[event_bus.TripDeleted]) error {
		return repo.DeleteByTrip(e.Context(), e.Data.TripID)
	})
	return &ServiceImpl{repo: repo, trips: trips, clock: clock}
}

func (s *ServiceImpl) CreateLink(ctx context.Context, tripID string) (Link, error) {
	t, err := s.ownedTrip(ctx, tripID)
	if err != nil {
		return Link{}, err
	}

	l := Link{
		ID:        uuid.NewString(),
		TripID:    t.ID,
		UserID:    t.UserID,
		Token:     uuid.NewString(),
		ExpiresAt: s.clock.Now().AddDate(0, 0, linkTTLDays),
	}
	if err := s.repo.Store(ctx, l); err != nil {
		return Link{}, err
	}
	return l, nil
}

func (s *ServiceImpl) ListLinks(ctx context.Context, tripID string) ([]Link, error) {
	if _, err := s.ownedTrip(ctx, tripID); err != nil {
		return nil, err
	}
	return s.repo.GetByTrip(ctx, tripID)
}

func (s *ServiceImpl) ResolveToken(ctx context.Context, token string) (trip.Trip, error) {
	l, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return trip.Trip{}, err
	}
	if l.Expired(s.clock.Now()) {
		return trip.Trip{}, ErrLinkExpired
	}
	return s.trips.GetTrip(ctx, l.TripID)
}

func (s *ServiceImpl) RevokeLink(ctx context.Context, id string) error {
	l, err := s.repo.GetLink(ctx, id)
	if err != nil {
		return err
	}
	userID, err := user.CurrentID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	if l.UserID != userID {
		log.Warnf("share link %s revocation attempted by %s but owned by %s", id, userID, l.UserID)
		return trip.ErrNotOwner
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLinkNotFound
	}
	return nil
}

func (s *ServiceImpl) ownedTrip(ctx context.Context, tripID string) (trip.Trip, error) {
	userID, err := user.CurrentID(ctx)
	if err != nil {
		return trip.Trip{}, fmt.Errorf("failed to get current user: %w", err)
	}
	t, err := s.trips.GetTrip(ctx, tripID)
	if err != nil {
		return trip.Trip{}, err
	}
	if t.UserID != userID {
		log.Warnf("share link for trip %s requested by %s but owned by %s", tripID, userID, t.UserID)
		return trip.Trip{}, trip.ErrNotOwner
	}
	return t, nil
}
