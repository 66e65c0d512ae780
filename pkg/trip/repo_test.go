package trip

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/globetrotter/globetrotter/internal/test_utils"
	"github.com/globetrotter/globetrotter/pkg/activity"
	"github.com/globetrotter/globetrotter/pkg/city"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*RepoImpl, *sql.DB) {
	t.Helper()
	db := test_utils.SetupTestDB(t)
	seedCatalog(t, db)
	return NewRepo(db), db
}

// seedCatalog loads the reference cities and activities the trips point at.
func seedCatalog(t *testing.T, db *sql.DB) {
	t.Helper()
	for _, c := range city.Fixtures() {
		tags, err := json.Marshal(c.Tags)
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO cities (id, name, country, description, image, avg_cost, tags, popular)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Country, c.Description, c.Image, c.AvgCost, string(tags), c.Popular)
		require.NoError(t, err)
	}
	for _, a := range activity.Fixtures() {
		_, err := db.Exec(`INSERT INTO activities (id, title, description, category, duration, cost, city_id, image, rating)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.Title, a.Description, a.Category, a.Duration, a.Cost, a.CityID, a.Image, a.Rating)
		require.NoError(t, err)
	}
	_, err := db.Exec(`INSERT INTO users (id, name, email) VALUES ('user-1', 'Alex Rivera', 'alex@globetrotter.com')`)
	require.NoError(t, err)
}

func TestRepoStoreAndGetTrip(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := test_utils.TestContext()
	fixture := Fixtures()[0]
	fixture.UserID = "user-1"

	require.NoError(t, repo.Store(ctx, fixture))

	stored, err := repo.GetTrip(ctx, "trip-1")
	require.NoError(t, err)
	assert.Equal(t, fixture.Name, stored.Name)
	assert.Equal(t, fixture.StartDate, stored.StartDate)
	assert.Equal(t, fixture.EndDate, stored.EndDate)
	assert.Equal(t, fixture.Budget, stored.Budget)

	require.Len(t, stored.Cities, 1)
	assert.Equal(t, "Tokyo", stored.Cities[0].Name)
	assert.Equal(t, []string{"Culture", "Food", "Technology"}, stored.Cities[0].Tags)

	require.Len(t, stored.Days, 3)
	assert.Equal(t, fixture.Days[0].Date, stored.Days[0].Date)
	require.Len(t, stored.Days[0].Activities, 2)
	assert.Equal(t, "act-1", stored.Days[0].Activities[0].ID)
	assert.Equal(t, "act-2", stored.Days[0].Activities[1].ID)
	assert.Empty(t, stored.Days[2].Activities)
}

func TestRepoGetTripNotFound(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.GetTrip(test_utils.TestContext(), "trip-404")
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestRepoUpdateReplacesAggregate(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := test_utils.TestContext()
	fixture := Fixtures()[0]
	require.NoError(t, repo.Store(ctx, fixture))

	fixture.Name = "Tokyo Revisited"
	fixture.Cities = append(fixture.Cities, city.Fixtures()[1])
	fixture.Days = []TripDay{
		{Date: time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), Activities: []activity.Activity{activity.Fixtures()[2]}},
	}

	ok, err := repo.Update(ctx, fixture)
	require.NoError(t, err)
	assert.True(t, ok)

	stored, err := repo.GetTrip(ctx, "trip-1")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo Revisited", stored.Name)
	require.Len(t, stored.Cities, 2)
	assert.Equal(t, "Paris", stored.Cities[1].Name)
	require.Len(t, stored.Days, 1)
	assert.Equal(t, "act-3", stored.Days[0].Activities[0].ID)
}

func TestRepoUpdateMissingTrip(t *testing.T) {
	repo, _ := setupRepo(t)

	ok, err := repo.Update(test_utils.TestContext(), Trip{ID: "trip-404", UserID: "user-1", Name: "Ghost",
		StartDate: time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC),
		Budget:    1000})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepoGetByUserAndShared(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := test_utils.TestContext()
	for _, fixture := range Fixtures() {
		require.NoError(t, repo.Store(ctx, fixture))
	}

	mine, err := repo.GetByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	shared, err := repo.GetShared(ctx)
	require.NoError(t, err)
	require.Len(t, shared, 2)
	for _, s := range shared {
		assert.True(t, s.Shared)
	}
}

func TestRepoDelete(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := test_utils.TestContext()
	require.NoError(t, repo.Store(ctx, Fixtures()[0]))

	deleted, err := repo.Delete(ctx, "trip-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetTrip(ctx, "trip-1")
	assert.ErrorIs(t, err, ErrTripNotFound)

	deleted, err = repo.Delete(ctx, "trip-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}
