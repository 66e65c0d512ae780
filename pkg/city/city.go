package city

import (
	"errors"
	"strings"
)

var ErrCityNotFound = errors.New("city not found")

// City is shared, read-only reference data. It is never owned by a trip.
type City struct {
	ID          string
	Name        string
	Country     string
	Description string
	Image       string
	AvgCost     int64
	Tags        []string
	Popular     bool
}

// HasAnyTag reports whether the city carries at least one of the given tags.
// An empty filter matches every city.
func (c City) HasAnyTag(tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, wanted := range tags {
		for _, tag := range c.Tags {
			if strings.EqualFold(tag, wanted) {
				return true
			}
		}
	}
	return false
}

// MatchesQuery reports whether the query is a case-insensitive substring of
// the city's name, country, or description. An empty query matches.
func (c City) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Country), q) ||
		strings.Contains(strings.ToLower(c.Description), q)
}
