package activity

import (
	"errors"
	"strings"
)

var ErrActivityNotFound = errors.New("activity not found")

// Activity is a bookable experience tied to a city. Like cities, activities
// are shared, read-only reference data.
type Activity struct {
	ID          string
	Title       string
	Description string
	Category    string
	Duration    string
	Cost        int64
	CityID      string
	Image       string
	Rating      float64
}

// MatchesQuery reports whether the query is a case-insensitive substring of
// the activity's title or description. An empty query matches.
func (a Activity) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Description), q)
}

// InAnyCategory reports whether the activity's category is one of the given
// categories. An empty filter matches every activity.
func (a Activity) InAnyCategory(categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range categories {
		if strings.EqualFold(a.Category, c) {
			return true
		}
	}
	return false
}
