package trip

import (
	"context"
	"testing"
	"time"

	"github.com/globetrotter/globetrotter/internal/event_bus"
	"github.com/globetrotter/globetrotter/pkg/city"
	"github.com/globetrotter/globetrotter/pkg/user"
	"github.com/stretchr/testify/assert"
)

func demoContext() context.Context {
	return user.WithUser(context.Background(), user.DemoUser())
}

func newTestService() (*ServiceImpl, *StubTripRepo, *event_bus.EventBus) {
	repo := NewDemoRepo()
	bus := event_bus.NewEventBus()
	return NewService(repo, bus), repo, bus
}

func TestCreateTrip(t *testing.T) {
	service, _, _ := newTestService()
	ctx := demoContext()

	created, err := service.Create(ctx, Trip{
		Name:      "Lisbon Getaway",
		StartDate: date(2026, time.September, 5),
		EndDate:   date(2026, time.September, 9),
		Budget:    60000,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user-1", created.UserID)
	assert.Empty(t, created.Cities)
	assert.Empty(t, created.Days)

	fetched, err := service.GetTrip(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCreateTripValidation(t *testing.T) {
	service, _, _ := newTestService()
	ctx := demoContext()

	tests := []struct {
		name string
		trip Trip
	}{
		{"empty name", Trip{StartDate: date(2026, time.September, 5), EndDate: date(2026, time.September, 9), Budget: 1000}},
		{"end before start", Trip{Name: "Backwards", StartDate: date(2026, time.September, 9), EndDate: date(2026, time.September, 5), Budget: 1000}},
		{"zero budget", Trip{Name: "Free", StartDate: date(2026, time.September, 5), EndDate: date(2026, time.September, 9)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, tt.trip)
			assert.ErrorIs(t, err, ErrInvalidTrip)
		})
	}
}

func TestGetTripAccess(t *testing.T) {
	service, _, _ := newTestService()
	ctx := demoContext()

	// shared trip owned by another user is visible
	shared, err := service.GetTrip(ctx, "trip-comm-1")
	assert.NoError(t, err)
	assert.Equal(t, "user-2", shared.UserID)

	// unshared trip owned by another user is not
	other := user.User{ID: "user-9", Name: "Sam", Email: "sam@example.com"}
	_, err = service.GetTrip(user.WithUser(context.Background(), other), "trip-1")
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestListTrips(t *testing.T) {
	service, _, _ := newTestService()

	trips, err := service.ListTrips(demoContext())
	assert.NoError(t, err)
	assert.Len(t, trips, 3)
	assert.Equal(t, "trip-1", trips[0].ID)
}

func TestListCommunityExcludesOwnTrips(t *testing.T) {
	service, _, _ := newTestService()

	community, err := service.ListCommunity(demoContext())
	assert.NoError(t, err)
	assert.Len(t, community, 2)
	for _, trip := range community {
		assert.NotEqual(t, "user-1", trip.UserID)
	}
}

func TestUpdateTrip(t *testing.T) {
	service, _, _ := newTestService()
	ctx := demoContext()

	name := "Tokyo Deep Dive"
	budget := int64(90000)
	updated, err := service.Update(ctx, "trip-1", Patch{Name: &name, Budget: &budget})
	assert.NoError(t, err)
	assert.Equal(t, "Tokyo Deep Dive", updated.Name)
	assert.Equal(t, int64(90000), updated.Budget)
	// untouched fields survive
	assert.Equal(t, date(2026, time.March, 15), updated.StartDate)
	assert.Len(t, updated.Days, 3)
}

func TestUpdateTripEmptyPatchChangesNothing(t *testing.T) {
	service, _, _ := newTestService()
	ctx := demoContext()

	before, err := service.GetTrip(ctx, "trip-1")
	assert.NoError(t, err)

	after, err := service.Update(ctx, "trip-1", Patch{})
	assert.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateTripRejectsInvalidDates(t *testing.T) {
	service, _, _ := newTestService()

	end := date(2026, time.March, 1)
	_, err := service.Update(demoContext(), "trip-1", Patch{EndDate: &end})
	assert.ErrorIs(t, err, ErrInvalidTrip)
}

func TestUpdateTripOwnerOnly(t *testing.T) {
	service, _, _ := newTestService()

	name := "Hijacked"
	_, err := service.Update(demoContext(), "trip-comm-1", Patch{Name: &name})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestDeleteTrip(t *testing.T) {
	service, _, bus := newTestService()
	ctx := demoContext()

	var published []event_bus.TripDeleted
	event_bus.SubscribeTyped(bus, event_bus.TripDeletedEvent, func(e event_bus.EventT[event_bus.TripDeleted]) error {
		published = append(published, e.Data)
		return nil
	})

	err := service.Delete(ctx, "trip-1")
	assert.NoError(t, err)

	_, err = service.GetTrip(ctx, "trip-1")
	assert.ErrorIs(t, err, ErrTripNotFound)

	trips, err := service.ListTrips(ctx)
	assert.NoError(t, err)
	assert.Len(t, trips, 2)

	assert.Equal(t, []event_bus.TripDeleted{{TripID: "trip-1", UserID: "user-1"}}, published)
}

func TestDeleteTripOwnerOnly(t *testing.T) {
	service, _, _ := newTestService()

	err := service.Delete(demoContext(), "trip-comm-2")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestAddCity(t *testing.T) {
	service, _, _ := newTestService()
	ctx := demoContext()
	paris := city.Fixtures()[1]

	updated, err := service.AddCity(ctx, "trip-1", paris)
	assert.NoError(t, err)
	assert.Len(t, updated.Cities, 2)
	assert.Equal(t, "city-1", updated.Cities[0].ID)
	assert.Equal(t, "city-2", updated.Cities[1].ID)

	// adding the same city again is a no-op
	again, err := service.AddCity(ctx, "trip-1", paris)
	assert.NoError(t, err)
	assert.Len(t, again.Cities, 2)
}

func TestTripOnDate(t *testing.T) {
	service, _, _ := newTestService()
	ctx := demoContext()

	found, ok, err := service.TripOnDate(ctx, date(2026, time.May, 3))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "trip-2", found.ID)

	_, ok, err = service.TripOnDate(ctx, date(2026, time.December, 25))
	assert.NoError(t, err)
	assert.False(t, ok)
}
