package budget

// Fixtures returns the built-in budget categories used in demo mode.
func Fixtures() []Category {
	return []Category{
		{Name: "Accommodation", Spent: 25000, Allocated: 30000, Color: "#C7F000"},
		{Name: "Food & Dining", Spent: 18000, Allocated: 20000, Color: "#6C7CFF"},
		{Name: "Activities", Spent: 15000, Allocated: 15000, Color: "#8B9CFF"},
		{Name: "Transportation", Spent: 12000, Allocated: 10000, Color: "#D6FF4D"},
		{Name: "Shopping", Spent: 8000, Allocated: 10000, Color: "#A1A1AA"},
	}
}
