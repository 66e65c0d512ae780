package city

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setupService() (Service, context.Context) {
	return NewService(NewDemoRepo()), context.Background()
}

func TestSearch_ByQueryCaseInsensitive(t *testing.T) {
	service, ctx := setupService()

	for _, query := range []string{"tokyo", "TOKYO", "Tokyo", "okY"} {
		cities, err := service.Search(ctx, Filter{Query: query})
		assert.NoError(t, err)
		assert.Len(t, cities, 1, "query %q", query)
		assert.Equal(t, "Tokyo", cities[0].Name)
	}
}

func TestSearch_MatchesCountryAndDescription(t *testing.T) {
	service, ctx := setupService()

	cities, err := service.Search(ctx, Filter{Query: "japan"})
	assert.NoError(t, err)
	assert.Len(t, cities, 1)
	assert.Equal(t, "Tokyo", cities[0].Name)

	cities, err = service.Search(ctx, Filter{Query: "never sleeps"})
	assert.NoError(t, err)
	assert.Len(t, cities, 1)
	assert.Equal(t, "New York", cities[0].Name)
}

func TestSearch_ByTag(t *testing.T) {
	service, ctx := setupService()

	cities, err := service.Search(ctx, Filter{Tags: []string{"Beach"}})
	assert.NoError(t, err)

	names := make([]string, 0, len(cities))
	for _, c := range cities {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"Bali", "Barcelona"}, names)
}

func TestSearch_TagsAreOrSemantics(t *testing.T) {
	service, ctx := setupService()

	cities, err := service.Search(ctx, Filter{Tags: []string{"Beach", "Desert"}})
	assert.NoError(t, err)

	names := make([]string, 0, len(cities))
	for _, c := range cities {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"Bali", "Barcelona", "Dubai"}, names)
}

func TestSearch_QueryAndTagCompose(t *testing.T) {
	service, ctx := setupService()

	// "Food" matches Tokyo, Paris, Barcelona; the query narrows it to one.
	cities, err := service.Search(ctx, Filter{Query: "spain", Tags: []string{"Food"}})
	assert.NoError(t, err)
	assert.Len(t, cities, 1)
	assert.Equal(t, "Barcelona", cities[0].Name)
}

func TestSearch_PopularOnly(t *testing.T) {
	service, ctx := setupService()

	cities, err := service.Search(ctx, Filter{PopularOnly: true})
	assert.NoError(t, err)
	assert.Len(t, cities, 5)
	for _, c := range cities {
		assert.True(t, c.Popular)
	}
}

func TestSearch_NoFilterReturnsAll(t *testing.T) {
	service, ctx := setupService()

	cities, err := service.Search(ctx, Filter{})
	assert.NoError(t, err)
	assert.Len(t, cities, 6)
}

func TestGetCity_NotFound(t *testing.T) {
	service, ctx := setupService()

	_, err := service.GetCity(ctx, "city-missing")
	assert.ErrorIs(t, err, ErrCityNotFound)
}
