package activity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	GetAll(ctx context.Context) ([]Activity, error)
	GetActivity(ctx context.Context, id string) (Activity, error)
	GetByCity(ctx context.Context, cityID string) ([]Activity, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

const activityColumns = `id, title, description, category, duration, cost, city_id, image, rating`

func (r *RepoImpl) GetAll(ctx context.Context) ([]Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities ORDER BY title`, activityColumns)
	return r.queryActivities(ctx, query)
}

func (r *RepoImpl) GetByCity(ctx context.Context, cityID string) ([]Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities WHERE city_id = ? ORDER BY title`, activityColumns)
	return r.queryActivities(ctx, query, cityID)
}

func (r *RepoImpl) queryActivities(ctx context.Context, query string, args ...any) ([]Activity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query activities: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Category, &a.Duration, &a.Cost, &a.CityID, &a.Image, &a.Rating); err != nil {
			err := fmt.Errorf("could not scan activity: %w", err)
			log.Error(err)
			return nil, err
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return activities, nil
}

func (r *RepoImpl) GetActivity(ctx context.Context, id string) (Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities WHERE id = ?`, activityColumns)
	var a Activity
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&a.ID, &a.Title, &a.Description, &a.Category, &a.Duration, &a.Cost, &a.CityID, &a.Image, &a.Rating)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Activity{}, ErrActivityNotFound
		}
		err := fmt.Errorf("could not scan activity: %w", err)
		log.Error(err)
		return Activity{}, err
	}
	return a, nil
}
