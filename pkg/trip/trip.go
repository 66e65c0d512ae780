package trip

import (
	"errors"
	"time"

	"github.com/globetrotter/globetrotter/pkg/activity"
	"github.com/globetrotter/globetrotter/pkg/city"
)

var (
	ErrTripNotFound = errors.New("trip not found")
	ErrNotOwner     = errors.New("trip does not belong to the current user")
)

// TripDay holds the activities scheduled for one calendar date. The day list
// of a trip may be sparse: dates without an entry simply have no activities
// planned yet.
type TripDay struct {
	Date       time.Time
	Activities []activity.Activity
}

type Trip struct {
	ID          string
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	Budget      int64
	Description string
	// Cities keeps insertion order; a city appears at most once.
	Cities []city.City
	Days   []TripDay
	Shared bool
	UserID string
}

// Duration returns the number of nights between two dates, i.e. the rounded-up
// day difference. It is symmetric in its arguments and never negative.
func Duration(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// DurationDays returns the trip's day span.
func (t Trip) DurationDays() int {
	return Duration(t.StartDate, t.EndDate)
}

// ContainsDate reports whether the date falls inside the trip's inclusive
// [start, end] range.
func (t Trip) ContainsDate(date time.Time) bool {
	return !date.Before(t.StartDate) && !date.After(t.EndDate)
}

// HasCity reports whether a city with the given id is already on the trip.
func (t Trip) HasCity(cityID string) bool {
	for _, c := range t.Cities {
		if c.ID == cityID {
			return true
		}
	}
	return false
}

// Day returns the stored entry for the given date, if any.
func (t Trip) Day(date time.Time) (TripDay, bool) {
	for _, d := range t.Days {
		if d.Date.Equal(date) {
			return d, true
		}
	}
	return TripDay{}, false
}

// OnDate returns the first trip in list order whose date range contains the
// given date. When ranges overlap, the earlier entry in the list wins; the
// calendar surfaces at most one trip per day.
func OnDate(trips []Trip, date time.Time) (Trip, bool) {
	for _, t := range trips {
		if t.ContainsDate(date) {
			return t, true
		}
	}
	return Trip{}, false
}
