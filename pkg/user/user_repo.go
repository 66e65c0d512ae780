package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	CreateUser(ctx context.Context, u User) error
	GetUser(ctx context.Context, id string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	UpdateUser(ctx context.Context, u User) (User, error)
	StoreRefreshToken(ctx context.Context, id string, token string) error
	RefreshToken(ctx context.Context, id string) (string, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) CreateUser(ctx context.Context, u User) error {
	query := `INSERT INTO users (id, name, email, avatar, password_hash) VALUES (?, ?, ?, ?, ?)`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, u.ID, u.Name, u.Email, u.Avatar, u.PasswordHash); err != nil {
		err := fmt.Errorf("could not store user: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) GetUser(ctx context.Context, id string) (User, error) {
	query := `SELECT id, name, email, avatar, password_hash FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *RepoImpl) GetUserByEmail(ctx context.Context, email string) (User, error) {
	query := `SELECT id, name, email, avatar, password_hash FROM users WHERE email = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *RepoImpl) scanUser(row *sql.Row) (User, error) {
	var u User
	var passwordHash sql.NullString
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Avatar, &passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		err := fmt.Errorf("could not scan user: %w", err)
		log.Error(err)
		return User{}, err
	}
	u.PasswordHash = passwordHash.String
	return u, nil
}

func (r *RepoImpl) UpdateUser(ctx context.Context, u User) (User, error) {
	query := `UPDATE users SET name = ?, email = ?, avatar = ? WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return User{}, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, u.Name, u.Email, u.Avatar, u.ID)
	if err != nil {
		err := fmt.Errorf("could not update user: %w", err)
		log.Error(err)
		return User{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return User{}, err
	}
	if rowsAffected == 0 {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (r *RepoImpl) StoreRefreshToken(ctx context.Context, id string, token string) error {
	query := `UPDATE users SET refresh_token = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, token, id); err != nil {
		err := fmt.Errorf("could not store refresh token: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) RefreshToken(ctx context.Context, id string) (string, error) {
	query := `SELECT refresh_token FROM users WHERE id = ?`
	var token sql.NullString
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserNotFound
		}
		err := fmt.Errorf("could not read refresh token: %w", err)
		log.Error(err)
		return "", err
	}
	return token.String, nil
}
