package city

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	GetAll(ctx context.Context) ([]City, error)
	GetCity(ctx context.Context, id string) (City, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) GetAll(ctx context.Context) ([]City, error) {
	query := `SELECT id, name, country, description, image, avg_cost, tags, popular FROM cities ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query cities: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var cities []City
	for rows.Next() {
		c, err := scanCity(rows.Scan)
		if err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return cities, nil
}

func (r *RepoImpl) GetCity(ctx context.Context, id string) (City, error) {
	query := `SELECT id, name, country, description, image, avg_cost, tags, popular FROM cities WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	c, err := scanCity(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return City{}, ErrCityNotFound
		}
		return City{}, err
	}
	return c, nil
}

// Tags are stored as a JSON array in a single column; cities are reference
// data queried as a whole, never by tag.
func scanCity(scan func(dest ...any) error) (City, error) {
	var c City
	var tagsJSON string
	if err := scan(&c.ID, &c.Name, &c.Country, &c.Description, &c.Image, &c.AvgCost, &tagsJSON, &c.Popular); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return City{}, err
		}
		err := fmt.Errorf("could not scan city: %w", err)
		log.Error(err)
		return City{}, err
	}
	if err := json.Unmarshal([]byte(tagsJSON), &c.Tags); err != nil {
		err := fmt.Errorf("could not decode city tags: %w", err)
		log.Error(err)
		return City{}, err
	}
	return c, nil
}
