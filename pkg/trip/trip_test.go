package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", date(2026, time.March, 15), date(2026, time.March, 15), 0},
		{"one week", date(2026, time.March, 15), date(2026, time.March, 21), 6},
		{"month boundary", date(2026, time.February, 27), date(2026, time.March, 2), 3},
		{"year boundary", date(2025, time.December, 30), date(2026, time.January, 2), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.start, tt.end))
		})
	}
}

func TestDurationIsSymmetric(t *testing.T) {
	start := date(2026, time.March, 15)
	end := date(2026, time.March, 21)
	assert.Equal(t, Duration(start, end), Duration(end, start))
}

func TestContainsDateInclusiveBounds(t *testing.T) {
	trip := Trip{StartDate: date(2026, time.March, 15), EndDate: date(2026, time.March, 21)}

	assert.True(t, trip.ContainsDate(date(2026, time.March, 15)))
	assert.True(t, trip.ContainsDate(date(2026, time.March, 21)))
	assert.True(t, trip.ContainsDate(date(2026, time.March, 18)))
	assert.False(t, trip.ContainsDate(date(2026, time.March, 14)))
	assert.False(t, trip.ContainsDate(date(2026, time.March, 22)))
}

func TestOnDate(t *testing.T) {
	trips := []Trip{
		{ID: "trip-a", StartDate: date(2026, time.March, 15), EndDate: date(2026, time.March, 21)},
		{ID: "trip-b", StartDate: date(2026, time.March, 20), EndDate: date(2026, time.March, 25)},
	}

	found, ok := OnDate(trips, date(2026, time.March, 23))
	assert.True(t, ok)
	assert.Equal(t, "trip-b", found.ID)

	_, ok = OnDate(trips, date(2026, time.April, 1))
	assert.False(t, ok)
}

func TestOnDateOverlapPicksFirst(t *testing.T) {
	trips := []Trip{
		{ID: "trip-a", StartDate: date(2026, time.March, 15), EndDate: date(2026, time.March, 21)},
		{ID: "trip-b", StartDate: date(2026, time.March, 20), EndDate: date(2026, time.March, 25)},
	}

	found, ok := OnDate(trips, date(2026, time.March, 20))
	assert.True(t, ok)
	assert.Equal(t, "trip-a", found.ID)
}

func TestDay(t *testing.T) {
	trip := Fixtures()[0]

	day, ok := trip.Day(date(2026, time.March, 15))
	assert.True(t, ok)
	assert.NotEmpty(t, day.Activities)

	empty, ok := trip.Day(date(2026, time.March, 17))
	assert.True(t, ok)
	assert.Empty(t, empty.Activities)

	_, ok = trip.Day(date(2026, time.March, 19))
	assert.False(t, ok)
}
