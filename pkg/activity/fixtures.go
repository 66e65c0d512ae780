package activity

// Fixtures returns the built-in activity catalog used in demo mode.
func Fixtures() []Activity {
	return []Activity{
		{
			ID:          "act-1",
			Title:       "Senso-ji Temple Visit",
			Description: "Ancient Buddhist temple in Asakusa",
			Category:    "Culture",
			Duration:    "2 hours",
			Cost:        0,
			CityID:      "city-1",
			Image:       "Church",
			Rating:      4.8,
		},
		{
			ID:          "act-2",
			Title:       "Sushi Making Class",
			Description: "Learn from master chefs",
			Category:    "Food",
			Duration:    "3 hours",
			Cost:        5500,
			CityID:      "city-1",
			Image:       "ChefHat",
			Rating:      4.9,
		},
		{
			ID:          "act-3",
			Title:       "Robot Restaurant Show",
			Description: "Futuristic dinner show experience",
			Category:    "Entertainment",
			Duration:    "2.5 hours",
			Cost:        8000,
			CityID:      "city-1",
			Image:       "Sparkles",
			Rating:      4.6,
		},
		{
			ID:          "act-4",
			Title:       "Eiffel Tower Visit",
			Description: "Iconic landmark with city views",
			Category:    "Sightseeing",
			Duration:    "3 hours",
			Cost:        2800,
			CityID:      "city-2",
			Image:       "Landmark",
			Rating:      4.7,
		},
		{
			ID:          "act-5",
			Title:       "Louvre Museum Tour",
			Description: "World-famous art museum",
			Category:    "Culture",
			Duration:    "4 hours",
			Cost:        1500,
			CityID:      "city-2",
			Image:       "Palette",
			Rating:      4.9,
		},
		{
			ID:          "act-6",
			Title:       "Seine River Cruise",
			Description: "Romantic evening cruise",
			Category:    "Leisure",
			Duration:    "2 hours",
			Cost:        3500,
			CityID:      "city-2",
			Image:       "Ship",
			Rating:      4.5,
		},
		{
			ID:          "act-7",
			Title:       "Yoga Retreat",
			Description: "Morning yoga in rice terraces",
			Category:    "Wellness",
			Duration:    "2 hours",
			Cost:        1200,
			CityID:      "city-3",
			Image:       "Heart",
			Rating:      4.8,
		},
		{
			ID:          "act-8",
			Title:       "Beach Surfing Lesson",
			Description: "Learn to surf at Kuta Beach",
			Category:    "Adventure",
			Duration:    "3 hours",
			Cost:        2000,
			CityID:      "city-3",
			Image:       "Waves",
			Rating:      4.7,
		},
	}
}
