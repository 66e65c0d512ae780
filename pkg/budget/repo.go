package budget

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	GetCategories(ctx context.Context) ([]Category, error)
	UpdateCategory(ctx context.Context, c Category) (bool, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) GetCategories(ctx context.Context) ([]Category, error) {
	query := `SELECT name, spent, allocated, color FROM budget_categories ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query budget categories: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.Name, &c.Spent, &c.Allocated, &c.Color); err != nil {
			err := fmt.Errorf("could not scan budget category: %w", err)
			log.Error(err)
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return categories, nil
}

func (r *RepoImpl) UpdateCategory(ctx context.Context, c Category) (bool, error) {
	query := `UPDATE budget_categories SET spent = ?, allocated = ?, color = ? WHERE name = ?`
	result, err := r.db.ExecContext(ctx, query, c.Spent, c.Allocated, c.Color, c.Name)
	if err != nil {
		err := fmt.Errorf("could not update budget category: %w", err)
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
