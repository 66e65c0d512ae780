package itinerary

import (
	"context"
	"errors"
	"time"

	"github.com/globetrotter/globetrotter/pkg/activity"
	"github.com/globetrotter/globetrotter/pkg/trip"
)

var (
	ErrDateOutOfRange     = errors.New("date is outside the trip's dates")
	ErrCityNotOnTrip      = errors.New("activity's city is not on the trip")
	ErrActivityNotPlanned = errors.New("activity is not planned for that day")
)

type Service interface {
	GetItinerary(ctx context.Context, tripID string) ([]Day, error)
	AddActivity(ctx context.Context, tripID string, date time.Time, activityID string) ([]Day, error)
	RemoveActivity(ctx context.Context, tripID string, date time.Time, activityID string) ([]Day, error)
}

type ServiceImpl struct {
	trips      trip.Service
	activities activity.Service
}

func NewService(trips trip.Service, activities activity.Service) *ServiceImpl {
	return &ServiceImpl{trips: trips, activities: activities}
}

func (s *ServiceImpl) GetItinerary(ctx context.Context, tripID string) ([]Day, error) {
	t, err := s.trips.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return Expand(t), nil
}

// AddActivity plans an activity on the given day. The activity's city must
// already be on the trip, and the date must fall within the trip's dates.
func (s *ServiceImpl) AddActivity(ctx context.Context, tripID string, date time.Time, activityID string) ([]Day, error) {
	t, err := s.trips.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !t.ContainsDate(date) {
		return nil, ErrDateOutOfRange
	}

	a, err := s.activities.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if !t.HasCity(a.CityID) {
		return nil, ErrCityNotOnTrip
	}

	days := appendActivity(t.Days, date, a)
	updated, err := s.trips.ReplaceDays(ctx, tripID, days)
	if err != nil {
		return nil, err
	}
	return Expand(updated), nil
}

func (s *ServiceImpl) RemoveActivity(ctx context.Context, tripID string, date time.Time, activityID string) ([]Day, error) {
	t, err := s.trips.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	days, removed := removeActivity(t.Days, date, activityID)
	if !removed {
		return nil, ErrActivityNotPlanned
	}
	updated, err := s.trips.ReplaceDays(ctx, tripID, days)
	if err != nil {
		return nil, err
	}
	return Expand(updated), nil
}

func appendActivity(days []trip.TripDay, date time.Time, a activity.Activity) []trip.TripDay {
	out := make([]trip.TripDay, len(days))
	copy(out, days)
	for i, d := range out {
		if d.Date.Equal(date) {
			// planning the same activity twice on one day is a no-op
			for _, existing := range d.Activities {
				if existing.ID == a.ID {
					return out
				}
			}
			activities := make([]activity.Activity, len(d.Activities), len(d.Activities)+1)
			copy(activities, d.Activities)
			out[i].Activities = append(activities, a)
			return out
		}
	}
	return append(out, trip.TripDay{Date: date, Activities: []activity.Activity{a}})
}

func removeActivity(days []trip.TripDay, date time.Time, activityID string) ([]trip.TripDay, bool) {
	out := make([]trip.TripDay, len(days))
	copy(out, days)
	for i, d := range out {
		if !d.Date.Equal(date) {
			continue
		}
		for j, a := range d.Activities {
			if a.ID == activityID {
				activities := make([]activity.Activity, 0, len(d.Activities)-1)
				activities = append(activities, d.Activities[:j]...)
				activities = append(activities, d.Activities[j+1:]...)
				out[i].Activities = activities
				return out, true
			}
		}
		return out, false
	}
	return out, false
}
