package city

// Fixtures returns the built-in city catalog used in demo mode.
func Fixtures() []City {
	return []City{
		{
			ID:          "city-1",
			Name:        "Tokyo",
			Country:     "Japan",
			Description: "A blend of tradition and futuristic innovation",
			Image:       "Building2",
			AvgCost:     8500,
			Tags:        []string{"Culture", "Food", "Technology"},
			Popular:     true,
		},
		{
			ID:          "city-2",
			Name:        "Paris",
			Country:     "France",
			Description: "The city of lights and romance",
			Image:       "Landmark",
			AvgCost:     12000,
			Tags:        []string{"Art", "History", "Food"},
			Popular:     true,
		},
		{
			ID:          "city-3",
			Name:        "Bali",
			Country:     "Indonesia",
			Description: "Tropical paradise with spiritual vibes",
			Image:       "Palmtree",
			AvgCost:     4000,
			Tags:        []string{"Beach", "Nature", "Wellness"},
			Popular:     true,
		},
		{
			ID:          "city-4",
			Name:        "New York",
			Country:     "USA",
			Description: "The city that never sleeps",
			Image:       "Building",
			AvgCost:     15000,
			Tags:        []string{"Urban", "Culture", "Shopping"},
			Popular:     true,
		},
		{
			ID:          "city-5",
			Name:        "Barcelona",
			Country:     "Spain",
			Description: "Architecture, beaches, and vibrant nightlife",
			Image:       "Waves",
			AvgCost:     9000,
			Tags:        []string{"Architecture", "Beach", "Food"},
			Popular:     false,
		},
		{
			ID:          "city-6",
			Name:        "Dubai",
			Country:     "UAE",
			Description: "Luxury and modern marvels",
			Image:       "Building",
			AvgCost:     18000,
			Tags:        []string{"Luxury", "Shopping", "Desert"},
			Popular:     true,
		},
	}
}
