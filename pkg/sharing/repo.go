package sharing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	Store(ctx context.Context, l Link) error
	GetLink(ctx context.Context, id string) (Link, error)
	GetByToken(ctx context.Context, token string) (Link, error)
	GetByTrip(ctx context.Context, tripID string) ([]Link, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteByTrip(ctx context.Context, tripID string) error
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, l Link) error {
	query := `INSERT INTO shared_trips (id, trip_id, user_id, token, expires_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, l.ID, l.TripID, l.UserID, l.Token, l.ExpiresAt.Format(time.RFC3339))
	if err != nil {
		err := fmt.Errorf("could not store share link: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) GetLink(ctx context.Context, id string) (Link, error) {
	query := `SELECT id, trip_id, user_id, token, expires_at FROM shared_trips WHERE id = ?`
	return r.scanLink(r.db.QueryRowContext(ctx, query, id))
}

func (r *RepoImpl) GetByToken(ctx context.Context, token string) (Link, error) {
	query := `SELECT id, trip_id, user_id, token, expires_at FROM shared_trips WHERE token = ?`
	return r.scanLink(r.db.QueryRowContext(ctx, query, token))
}

func (r *RepoImpl) GetByTrip(ctx context.Context, tripID string) ([]Link, error) {
	query := `SELECT id, trip_id, user_id, token, expires_at FROM shared_trips WHERE trip_id = ? ORDER BY expires_at`
	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		err := fmt.Errorf("could not query share links: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var links []Link
	for rows.Next() {
		var l Link
		var expiresAt string
		if err := rows.Scan(&l.ID, &l.TripID, &l.UserID, &l.Token, &expiresAt); err != nil {
			err := fmt.Errorf("could not scan share link: %w", err)
			log.Error(err)
			return nil, err
		}
		if l.ExpiresAt, err = time.Parse(time.RFC3339, expiresAt); err != nil {
			err := fmt.Errorf("could not parse share link expiry: %w", err)
			log.Error(err)
			return nil, err
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return links, nil
}

func (r *RepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM shared_trips WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		err := fmt.Errorf("could not delete share link: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r *RepoImpl) DeleteByTrip(ctx context.Context, tripID string) error {
	query := `DELETE FROM shared_trips WHERE trip_id = ?`
	if _, err := r.db.ExecContext(ctx, query, tripID); err != nil {
		err := fmt.Errorf("could not delete share links for trip: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) scanLink(row *sql.Row) (Link, error) {
	var l Link
	var expiresAt string
	err := row.Scan(&l.ID, &l.TripID, &l.UserID, &l.Token, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Link{}, ErrLinkNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not scan share link: %w", err)
		log.Error(err)
		return Link{}, err
	}
	if l.ExpiresAt, err = time.Parse(time.RFC3339, expiresAt); err != nil {
		err := fmt.Errorf("could not parse share link expiry: %w", err)
		log.Error(err)
		return Link{}, err
	}
	return l, nil
}
