package budget

// Category is one slice of the travel budget. Categories are a single global
// list; they are not attached to an individual trip.
type Category struct {
	Name      string
	Spent     int64
	Allocated int64
	Color     string
}

// Remaining may be negative when a category is overspent.
func (c Category) Remaining() int64 {
	return c.Allocated - c.Spent
}

// PercentSpent returns how much of the category's allocation has been spent,
// as a percentage. A category with no allocation reports 0.
func (c Category) PercentSpent() float64 {
	if c.Allocated == 0 {
		return 0
	}
	return float64(c.Spent) / float64(c.Allocated) * 100
}

// Summary aggregates all categories into the headline budget numbers.
type Summary struct {
	TotalAllocated int64
	TotalSpent     int64
	Remaining      int64
	PercentSpent   float64
}

// Summarize folds the category list into a Summary. With no allocation at all
// the spent percentage is reported as 0 rather than dividing by zero.
func Summarize(categories []Category) Summary {
	var s Summary
	for _, c := range categories {
		s.TotalAllocated += c.Allocated
		s.TotalSpent += c.Spent
	}
	s.Remaining = s.TotalAllocated - s.TotalSpent
	if s.TotalAllocated != 0 {
		s.PercentSpent = float64(s.TotalSpent) / float64(s.TotalAllocated) * 100
	}
	return s
}
