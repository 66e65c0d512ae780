package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberPlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "insert with several placeholders",
			query:    `INSERT INTO users (id, name, email) VALUES (?, ?, ?)`,
			expected: `INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`,
		},
		{
			name:     "update keeps argument order",
			query:    `UPDATE trips SET name = ?, start_date = ? WHERE id = ? AND user_id = ?`,
			expected: `UPDATE trips SET name = $1, start_date = $2 WHERE id = $3 AND user_id = $4`,
		},
		{
			name:     "question mark inside string literal is untouched",
			query:    `SELECT id FROM cities WHERE name = '?' OR name = ?`,
			expected: `SELECT id FROM cities WHERE name = '?' OR name = $1`,
		},
		{
			name:     "query without placeholders passes through",
			query:    `DELETE FROM shared_trips`,
			expected: `DELETE FROM shared_trips`,
		},
		{
			name:     "more than nine placeholders",
			query:    `VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			expected: `VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NumberPlaceholders(tt.query))
		})
	}
}
