package activity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setupService() (Service, context.Context) {
	return NewService(NewDemoRepo()), context.Background()
}

func TestGetByCity(t *testing.T) {
	service, ctx := setupService()

	activities, err := service.GetByCity(ctx, "city-1")
	assert.NoError(t, err)
	assert.Len(t, activities, 3)
	for _, a := range activities {
		assert.Equal(t, "city-1", a.CityID)
	}

	activities, err = service.GetByCity(ctx, "city-6")
	assert.NoError(t, err)
	assert.Empty(t, activities)
}

func TestSearch_ByQuery(t *testing.T) {
	service, ctx := setupService()

	activities, err := service.Search(ctx, Filter{Query: "sushi"})
	assert.NoError(t, err)
	assert.Len(t, activities, 1)
	assert.Equal(t, "Sushi Making Class", activities[0].Title)

	// Matches against the description too.
	activities, err = service.Search(ctx, Filter{Query: "kuta beach"})
	assert.NoError(t, err)
	assert.Len(t, activities, 1)
	assert.Equal(t, "Beach Surfing Lesson", activities[0].Title)
}

func TestSearch_ByCategory(t *testing.T) {
	service, ctx := setupService()

	activities, err := service.Search(ctx, Filter{Categories: []string{"Culture"}})
	assert.NoError(t, err)

	titles := make([]string, 0, len(activities))
	for _, a := range activities {
		titles = append(titles, a.Title)
	}
	assert.ElementsMatch(t, []string{"Senso-ji Temple Visit", "Louvre Museum Tour"}, titles)
}

func TestSearch_CategoryAndCityCompose(t *testing.T) {
	service, ctx := setupService()

	activities, err := service.Search(ctx, Filter{Categories: []string{"Culture"}, CityID: "city-2"})
	assert.NoError(t, err)
	assert.Len(t, activities, 1)
	assert.Equal(t, "Louvre Museum Tour", activities[0].Title)
}

func TestGetActivity_NotFound(t *testing.T) {
	service, ctx := setupService()

	_, err := service.GetActivity(ctx, "act-missing")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}
