package trip

import (
	"time"

	"github.com/globetrotter/globetrotter/pkg/activity"
	"github.com/globetrotter/globetrotter/pkg/city"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Fixtures returns the demo user's trips, itineraries included.
func Fixtures() []Trip {
	cities := city.Fixtures()
	activities := activity.Fixtures()

	return []Trip{
		{
			ID:          "trip-1",
			Name:        "Tokyo Culture Explorer",
			StartDate:   date(2026, time.March, 15),
			EndDate:     date(2026, time.March, 21),
			Budget:      85000,
			Description: "A week immersed in Japanese culture, food, and technology",
			Cities:      []city.City{cities[0]},
			Days: []TripDay{
				{Date: date(2026, time.March, 15), Activities: []activity.Activity{activities[0], activities[1]}},
				{Date: date(2026, time.March, 16), Activities: []activity.Activity{activities[2]}},
				{Date: date(2026, time.March, 17), Activities: []activity.Activity{}},
			},
			Shared: false,
			UserID: "user-1",
		},
		{
			ID:          "trip-2",
			Name:        "Paris Art & Romance",
			StartDate:   date(2026, time.May, 1),
			EndDate:     date(2026, time.May, 7),
			Budget:      120000,
			Description: "Experience the magic of Paris",
			Cities:      []city.City{cities[1]},
			Days: []TripDay{
				{Date: date(2026, time.May, 1), Activities: []activity.Activity{activities[3]}},
				{Date: date(2026, time.May, 2), Activities: []activity.Activity{activities[4]}},
			},
			Shared: true,
			UserID: "user-1",
		},
		{
			ID:          "trip-3",
			Name:        "Bali Wellness Escape",
			StartDate:   date(2026, time.June, 10),
			EndDate:     date(2026, time.June, 17),
			Budget:      45000,
			Description: "Rejuvenate in paradise",
			Cities:      []city.City{cities[2]},
			Days: []TripDay{
				{Date: date(2026, time.June, 10), Activities: []activity.Activity{activities[6]}},
				{Date: date(2026, time.June, 11), Activities: []activity.Activity{activities[7]}},
			},
			Shared: true,
			UserID: "user-1",
		},
	}
}

// CommunityFixtures returns trips shared by other demo travellers.
func CommunityFixtures() []Trip {
	cities := city.Fixtures()

	return []Trip{
		{
			ID:          "trip-comm-1",
			Name:        "Barcelona Summer Adventure",
			StartDate:   date(2026, time.July, 1),
			EndDate:     date(2026, time.July, 10),
			Budget:      95000,
			Description: "Beach, architecture, and nightlife",
			Cities:      []city.City{cities[4]},
			Days:        []TripDay{},
			Shared:      true,
			UserID:      "user-2",
		},
		{
			ID:          "trip-comm-2",
			Name:        "Dubai Luxury Experience",
			StartDate:   date(2026, time.August, 15),
			EndDate:     date(2026, time.August, 22),
			Budget:      250000,
			Description: "Live like royalty in Dubai",
			Cities:      []city.City{cities[5]},
			Days:        []TripDay{},
			Shared:      true,
			UserID:      "user-3",
		},
	}
}
