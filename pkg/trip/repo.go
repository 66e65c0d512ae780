package trip

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/globetrotter/globetrotter/internal/utils"
	"github.com/globetrotter/globetrotter/pkg/activity"
	"github.com/globetrotter/globetrotter/pkg/city"
	log "github.com/sirupsen/logrus"
)

type Repo interface {
	Store(ctx context.Context, t Trip) error
	GetTrip(ctx context.Context, id string) (Trip, error)
	GetByUser(ctx context.Context, userID string) ([]Trip, error)
	GetShared(ctx context.Context) ([]Trip, error)
	// Update replaces the whole trip aggregate: base fields, city list, and
	// day entries. Returns false when no trip with that id exists.
	Update(ctx context.Context, t Trip) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, t Trip) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("could not begin transaction: %w", err)
		log.Error(err)
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO trips (id, user_id, name, start_date, end_date, budget, description, shared)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.Name,
		t.StartDate.Format(utils.ISODate),
		t.EndDate.Format(utils.ISODate),
		t.Budget,
		t.Description,
		t.Shared,
	)
	if err != nil {
		err := fmt.Errorf("could not store trip: %w", err)
		log.Error(err)
		return err
	}

	if err := insertAggregate(ctx, tx, t); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *RepoImpl) Update(ctx context.Context, t Trip) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("could not begin transaction: %w", err)
		log.Error(err)
		return false, err
	}
	defer tx.Rollback()

	query := `UPDATE trips SET name = ?, start_date = ?, end_date = ?, budget = ?, description = ?, shared = ?
				WHERE id = ?`
	result, err := tx.ExecContext(ctx, query,
		t.Name,
		t.StartDate.Format(utils.ISODate),
		t.EndDate.Format(utils.ISODate),
		t.Budget,
		t.Description,
		t.Shared,
		t.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not update trip: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	if rowsAffected == 0 {
		return false, nil
	}

	for _, table := range []string{"trip_day_activities", "trip_days", "trip_cities"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE trip_id = ?", table), t.ID); err != nil {
			err := fmt.Errorf("could not clear %s: %w", table, err)
			log.Error(err)
			return false, err
		}
	}
	if err := insertAggregate(ctx, tx, t); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func insertAggregate(ctx context.Context, tx *sql.Tx, t Trip) error {
	for position, c := range t.Cities {
		query := `INSERT INTO trip_cities (trip_id, city_id, position) VALUES (?, ?, ?)`
		if _, err := tx.ExecContext(ctx, query, t.ID, c.ID, position); err != nil {
			err := fmt.Errorf("could not store trip city: %w", err)
			log.Error(err)
			return err
		}
	}
	for _, day := range t.Days {
		dateParam := day.Date.Format(utils.ISODate)
		query := `INSERT INTO trip_days (trip_id, date) VALUES (?, ?)`
		if _, err := tx.ExecContext(ctx, query, t.ID, dateParam); err != nil {
			err := fmt.Errorf("could not store trip day: %w", err)
			log.Error(err)
			return err
		}
		for position, a := range day.Activities {
			query := `INSERT INTO trip_day_activities (trip_id, date, activity_id, position) VALUES (?, ?, ?, ?)`
			if _, err := tx.ExecContext(ctx, query, t.ID, dateParam, a.ID, position); err != nil {
				err := fmt.Errorf("could not store trip day activity: %w", err)
				log.Error(err)
				return err
			}
		}
	}
	return nil
}

func (r *RepoImpl) GetTrip(ctx context.Context, id string) (Trip, error) {
	trips, err := r.queryTrips(ctx, `SELECT id, user_id, name, start_date, end_date, budget, description, shared
		FROM trips WHERE id = ?`, id)
	if err != nil {
		return Trip{}, err
	}
	if len(trips) == 0 {
		return Trip{}, ErrTripNotFound
	}
	return trips[0], nil
}

func (r *RepoImpl) GetByUser(ctx context.Context, userID string) ([]Trip, error) {
	return r.queryTrips(ctx, `SELECT id, user_id, name, start_date, end_date, budget, description, shared
		FROM trips WHERE user_id = ? ORDER BY created_at, id`, userID)
}

func (r *RepoImpl) GetShared(ctx context.Context) ([]Trip, error) {
	return r.queryTrips(ctx, `SELECT id, user_id, name, start_date, end_date, budget, description, shared
		FROM trips WHERE shared ORDER BY created_at, id`)
}

func (r *RepoImpl) queryTrips(ctx context.Context, query string, args ...any) ([]Trip, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query trips: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var trips []Trip
	for rows.Next() {
		var t Trip
		var startDate, endDate string
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &startDate, &endDate, &t.Budget, &t.Description, &t.Shared); err != nil {
			err := fmt.Errorf("could not scan trip: %w", err)
			log.Error(err)
			return nil, err
		}
		if t.StartDate, err = time.Parse(utils.ISODate, startDate); err != nil {
			err := fmt.Errorf("could not parse trip start date: %w", err)
			log.Error(err)
			return nil, err
		}
		if t.EndDate, err = time.Parse(utils.ISODate, endDate); err != nil {
			err := fmt.Errorf("could not parse trip end date: %w", err)
			log.Error(err)
			return nil, err
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	for i := range trips {
		if err := r.loadAggregate(ctx, &trips[i]); err != nil {
			return nil, err
		}
	}
	return trips, nil
}

func (r *RepoImpl) loadAggregate(ctx context.Context, t *Trip) error {
	cities, err := r.loadCities(ctx, t.ID)
	if err != nil {
		return err
	}
	t.Cities = cities

	days, err := r.loadDays(ctx, t.ID)
	if err != nil {
		return err
	}
	t.Days = days
	return nil
}

func (r *RepoImpl) loadCities(ctx context.Context, tripID string) ([]city.City, error) {
	query := `SELECT c.id, c.name, c.country, c.description, c.image, c.avg_cost, c.tags, c.popular
		FROM trip_cities tc JOIN cities c ON c.id = tc.city_id
		WHERE tc.trip_id = ? ORDER BY tc.position`
	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		err := fmt.Errorf("could not query trip cities: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var cities []city.City
	for rows.Next() {
		var c city.City
		var tagsJSON string
		if err := rows.Scan(&c.ID, &c.Name, &c.Country, &c.Description, &c.Image, &c.AvgCost, &tagsJSON, &c.Popular); err != nil {
			err := fmt.Errorf("could not scan trip city: %w", err)
			log.Error(err)
			return nil, err
		}
		if err := json.Unmarshal([]byte(tagsJSON), &c.Tags); err != nil {
			err := fmt.Errorf("could not decode city tags: %w", err)
			log.Error(err)
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (r *RepoImpl) loadDays(ctx context.Context, tripID string) ([]TripDay, error) {
	query := `SELECT date FROM trip_days WHERE trip_id = ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		err := fmt.Errorf("could not query trip days: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var days []TripDay
	for rows.Next() {
		var dateString string
		if err := rows.Scan(&dateString); err != nil {
			err := fmt.Errorf("could not scan trip day: %w", err)
			log.Error(err)
			return nil, err
		}
		date, err := time.Parse(utils.ISODate, dateString)
		if err != nil {
			err := fmt.Errorf("could not parse trip day date: %w", err)
			log.Error(err)
			return nil, err
		}
		days = append(days, TripDay{Date: date, Activities: []activity.Activity{}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range days {
		activities, err := r.loadDayActivities(ctx, tripID, days[i].Date)
		if err != nil {
			return nil, err
		}
		days[i].Activities = activities
	}
	return days, nil
}

func (r *RepoImpl) loadDayActivities(ctx context.Context, tripID string, date time.Time) ([]activity.Activity, error) {
	query := `SELECT a.id, a.title, a.description, a.category, a.duration, a.cost, a.city_id, a.image, a.rating
		FROM trip_day_activities tda JOIN activities a ON a.id = tda.activity_id
		WHERE tda.trip_id = ? AND tda.date = ? ORDER BY tda.position`
	rows, err := r.db.QueryContext(ctx, query, tripID, date.Format(utils.ISODate))
	if err != nil {
		err := fmt.Errorf("could not query trip day activities: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	activities := []activity.Activity{}
	for rows.Next() {
		var a activity.Activity
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Category, &a.Duration, &a.Cost, &a.CityID, &a.Image, &a.Rating); err != nil {
			err := fmt.Errorf("could not scan trip day activity: %w", err)
			log.Error(err)
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (r *RepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("could not begin transaction: %w", err)
		log.Error(err)
		return false, err
	}
	defer tx.Rollback()

	for _, table := range []string{"trip_day_activities", "trip_days", "trip_cities"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE trip_id = ?", table), id); err != nil {
			err := fmt.Errorf("could not clear %s: %w", table, err)
			log.Error(err)
			return false, err
		}
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", id)
	if err != nil {
		err := fmt.Errorf("could not delete trip: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}
