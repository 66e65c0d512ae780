package sharing

import (
	"context"
	"testing"
	"time"

	"github.com/globetrotter/globetrotter/internal/event_bus"
	"github.com/globetrotter/globetrotter/internal/utils"
	"github.com/globetrotter/globetrotter/pkg/trip"
	"github.com/globetrotter/globetrotter/pkg/user"
	"github.com/stretchr/testify/assert"
)

func demoContext() context.Context {
	return user.WithUser(context.Background(), user.DemoUser())
}

func newTestService() (*ServiceImpl, *utils.MockClock, *event_bus.EventBus) {
	clock := &utils.MockClock{FixedNow: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)}
	bus := event_bus.NewEventBus()
	service := NewService(NewStubRepo(), trip.NewDemoRepo(), clock, bus)
	return service, clock, bus
}

func TestCreateLinkAndResolve(t *testing.T) {
	service, _, _ := newTestService()
	ctx := demoContext()

	l, err := service.CreateLink(ctx, "trip-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, l.Token)
	assert.Equal(t, "trip-1", l.TripID)
	assert.Equal(t, "user-1", l.UserID)
	assert.Equal(t, time.Date(2026, time.March, 31, 12, 0, 0, 0, time.UTC), l.ExpiresAt)

	// token resolution needs no signed-in user
	resolved, err := service.ResolveToken(context.Background(), l.Token)
	assert.NoError(t, err)
	assert.Equal(t, "trip-1", resolved.ID)
	assert.Equal(t, "Tokyo Culture Explorer", resolved.Name)
}

func TestCreateLinkOwnerOnly(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.CreateLink(demoContext(), "trip-comm-1")
	assert.ErrorIs(t, err, trip.ErrNotOwner)
}

func TestCreateLinkUnknownTrip(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.CreateLink(demoContext(), "trip-404")
	assert.ErrorIs(t, err, trip.ErrTripNotFound)
}

func TestResolveTokenExpired(t *testing.T) {
	service, clock, _ := newTestService()

	l, err := service.CreateLink(demoContext(), "trip-1")
	assert.NoError(t, err)

	clock.SetNow(l.ExpiresAt.AddDate(0, 0, 1))
	_, err = service.ResolveToken(context.Background(), l.Token)
	assert.ErrorIs(t, err, ErrLinkExpired)
}

func TestResolveUnknownToken(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.ResolveToken(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestListLinks(t *testing.T) {
	service, _, _ := newTestService()
	ctx := demoContext()

	first, err := service.CreateLink(ctx, "trip-1")
	assert.NoError(t, err)
	_, err = service.CreateLink(ctx, "trip-2")
	assert.NoError(t, err)

	links, err := service.ListLinks(ctx, "trip-1")
	assert.NoError(t, err)
	assert.Len(t, links, 1)
	assert.Equal(t, first.ID, links[0].ID)
}

func TestRevokeLink(t *testing.T) {
	service, _, _ := newTestService()
	ctx := demoContext()

	l, err := service.CreateLink(ctx, "trip-1")
	assert.NoError(t, err)

	assert.NoError(t, service.RevokeLink(ctx, l.ID))

	_, err = service.ResolveToken(context.Background(), l.Token)
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestRevokeLinkOwnerOnly(t *testing.T) {
	service, _, _ := newTestService()

	l, err := service.CreateLink(demoContext(), "trip-1")
	assert.NoError(t, err)

	other := user.User{ID: "user-9", Name: "Sam", Email: "sam@example.com"}
	err = service.RevokeLink(user.WithUser(context.Background(), other), l.ID)
	assert.ErrorIs(t, err, trip.ErrNotOwner)
}

func TestTripDeletionDropsLinks(t *testing.T) {
	service, _, bus := newTestService()
	ctx := demoContext()

	l, err := service.CreateLink(ctx, "trip-1")
	assert.NoError(t, err)

	err = bus.Publish(event_bus.NewEvent(ctx, event_bus.TripDeletedEvent, event_bus.TripDeleted{
		TripID: "trip-1",
		UserID: "user-1",
	}))
	assert.NoError(t, err)

	_, err = service.ResolveToken(context.Background(), l.Token)
	assert.ErrorIs(t, err, ErrLinkNotFound)
}
