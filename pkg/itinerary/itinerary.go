package itinerary

import (
	"time"

	"github.com/globetrotter/globetrotter/internal/utils"
	"github.com/globetrotter/globetrotter/pkg/activity"
	"github.com/globetrotter/globetrotter/pkg/trip"
)

// Day is one row of the day-by-day builder: a calendar slot plus whatever
// activities have been planned for it. Slots without plans carry an empty
// Activities slice.
type Day struct {
	Index      int
	Date       time.Time
	Label      string
	Activities []activity.Activity
}

// ExpandDays lays out one slot per calendar day from start to end, both
// inclusive. A trip from March 15 to March 21 yields seven slots.
func ExpandDays(start, end time.Time) []Day {
	count := trip.Duration(start, end) + 1
	days := make([]Day, 0, count)
	for i := 0; i < count; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, Day{
			Index:      i,
			Date:       d,
			Label:      utils.FormatDate(d),
			Activities: []activity.Activity{},
		})
	}
	return days
}

// Expand merges a trip's stored day entries into its full calendar layout.
func Expand(t trip.Trip) []Day {
	days := ExpandDays(t.StartDate, t.EndDate)
	for i := range days {
		if stored, ok := t.Day(days[i].Date); ok && stored.Activities != nil {
			days[i].Activities = stored.Activities
		}
	}
	return days
}
