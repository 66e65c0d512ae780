package trip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/globetrotter/globetrotter/internal/event_bus"
	"github.com/globetrotter/globetrotter/pkg/city"
	"github.com/globetrotter/globetrotter/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidTrip = errors.New("invalid trip")

// Patch carries a partial update: nil fields keep their current value. An
// all-nil patch leaves the trip unchanged.
type Patch struct {
	Name        *string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *int64
	Description *string
	Shared      *bool
}

func (p Patch) apply(t Trip) Trip {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		t.EndDate = *p.EndDate
	}
	if p.Budget != nil {
		t.Budget = *p.Budget
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Shared != nil {
		t.Shared = *p.Shared
	}
	return t
}

type Service interface {
	Create(ctx context.Context, t Trip) (Trip, error)
	GetTrip(ctx context.Context, id string) (Trip, error)
	ListTrips(ctx context.Context) ([]Trip, error)
	ListCommunity(ctx context.Context) ([]Trip, error)
	Update(ctx context.Context, id string, patch Patch) (Trip, error)
	Delete(ctx context.Context, id string) error
	AddCity(ctx context.Context, tripID string, c city.City) (Trip, error)
	TripOnDate(ctx context.Context, date time.Time) (Trip, bool, error)
	// ReplaceDays swaps a trip's day entries; used by the itinerary builder.
	ReplaceDays(ctx context.Context, tripID string, days []TripDay) (Trip, error)
}

type ServiceImpl struct {
	repo Repo
	bus  *event_bus.EventBus
}

func NewService(repo Repo, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func validate(t Trip) error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTrip)
	}
	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidTrip)
	}
	if t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("%w: end date must not be before start date", ErrInvalidTrip)
	}
	if t.Budget <= 0 {
		return fmt.Errorf("%w: budget must be positive", ErrInvalidTrip)
	}
	return nil
}

func (s *ServiceImpl) Create(ctx context.Context, t Trip) (Trip, error) {
	userID, err := user.CurrentID(ctx)
	if err != nil {
		return Trip{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validate(t); err != nil {
		return Trip{}, err
	}

	t.ID = uuid.NewString()
	t.UserID = userID
	if t.Cities == nil {
		t.Cities = []city.City{}
	}
	if t.Days == nil {
		t.Days = []TripDay{}
	}

	if err := s.repo.Store(ctx, t); err != nil {
		return Trip{}, err
	}

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.TripCreatedEvent, event_bus.TripCreated{
		TripID: t.ID,
		UserID: t.UserID,
		Name:   t.Name,
	})); err != nil {
		log.Warnf("failed to publish trip created event: %v", err)
	}
	return t, nil
}

// GetTrip returns the trip when it belongs to the current user or has been
// shared with the community.
func (s *ServiceImpl) GetTrip(ctx context.Context, id string) (Trip, error) {
	t, err := s.repo.GetTrip(ctx, id)
	if err != nil {
		return Trip{}, err
	}
	userID, err := user.CurrentID(ctx)
	if err != nil {
		return Trip{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if t.UserID != userID && !t.Shared {
		log.Warnf("trip %s requested by %s but owned by %s and not shared", id, userID, t.UserID)
		return Trip{}, ErrTripNotFound
	}
	return t, nil
}

func (s *ServiceImpl) ListTrips(ctx context.Context) ([]Trip, error) {
	userID, err := user.CurrentID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetByUser(ctx, userID)
}

// ListCommunity returns trips shared by other travellers.
func (s *ServiceImpl) ListCommunity(ctx context.Context) ([]Trip, error) {
	userID, err := user.CurrentID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	shared, err := s.repo.GetShared(ctx)
	if err != nil {
		return nil, err
	}
	community := make([]Trip, 0, len(shared))
	for _, t := range shared {
		if t.UserID != userID {
			community = append(community, t)
		}
	}
	return community, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id string, patch Patch) (Trip, error) {
	existing, err := s.ownedTrip(ctx, id)
	if err != nil {
		return Trip{}, err
	}

	updated := patch.apply(existing)
	if err := validate(updated); err != nil {
		return Trip{}, err
	}

	ok, err := s.repo.Update(ctx, updated)
	if err != nil {
		return Trip{}, err
	}
	if !ok {
		return Trip{}, ErrTripNotFound
	}
	return updated, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.ownedTrip(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTripNotFound
	}

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.TripDeletedEvent, event_bus.TripDeleted{
		TripID: existing.ID,
		UserID: existing.UserID,
	})); err != nil {
		log.Warnf("failed to publish trip deleted event: %v", err)
	}
	return nil
}

// AddCity appends a city to the trip's ordered city set. Adding a city that
// is already present is a no-op.
func (s *ServiceImpl) AddCity(ctx context.Context, tripID string, c city.City) (Trip, error) {
	existing, err := s.ownedTrip(ctx, tripID)
	if err != nil {
		return Trip{}, err
	}

	if existing.HasCity(c.ID) {
		return existing, nil
	}
	existing.Cities = append(existing.Cities, c)

	ok, err := s.repo.Update(ctx, existing)
	if err != nil {
		return Trip{}, err
	}
	if !ok {
		return Trip{}, ErrTripNotFound
	}
	return existing, nil
}

// TripOnDate finds the current user's trip covering the given calendar date.
func (s *ServiceImpl) TripOnDate(ctx context.Context, date time.Time) (Trip, bool, error) {
	trips, err := s.ListTrips(ctx)
	if err != nil {
		return Trip{}, false, err
	}
	t, ok := OnDate(trips, date)
	return t, ok, nil
}

func (s *ServiceImpl) ReplaceDays(ctx context.Context, tripID string, days []TripDay) (Trip, error) {
	existing, err := s.ownedTrip(ctx, tripID)
	if err != nil {
		return Trip{}, err
	}

	existing.Days = days
	ok, err := s.repo.Update(ctx, existing)
	if err != nil {
		return Trip{}, err
	}
	if !ok {
		return Trip{}, ErrTripNotFound
	}
	return existing, nil
}

func (s *ServiceImpl) ownedTrip(ctx context.Context, id string) (Trip, error) {
	userID, err := user.CurrentID(ctx)
	if err != nil {
		return Trip{}, fmt.Errorf("failed to get current user: %w", err)
	}
	t, err := s.repo.GetTrip(ctx, id)
	if err != nil {
		return Trip{}, err
	}
	if t.UserID != userID {
		log.Warnf("trip %s modification attempted by %s but owned by %s", id, userID, t.UserID)
		return Trip{}, ErrNotOwner
	}
	return t, nil
}
