package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (Quiz, error) {
	var q Quiz
	var checkpointsJSON, hintsJSON string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, scenario, checkpoints, hints, solution
		FROM quizzes WHERE id = ?
	`, id).Scan(&q.ID, &q.Title, &q.Scenario, &checkpointsJSON, &hintsJSON, &q.Solution)
	if errors.Is(err, sql.ErrNoRows) {
		return q, ErrNotFound
	}
	if err != nil {
		return q, err
	}
	if err := json.Unmarshal([]byte(checkpointsJSON), &q.Checkpoints); err != nil {
		return q, fmt.Errorf("decoding checkpoints for %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(hintsJSON), &q.Hints); err != nil {
		return q, fmt.Errorf("decoding hints for %s: %w", id, err)
	}
	return q, nil
}

// Seed inserts the built-in catalogue. Idempotent: existing rows are kept
// untouched so edits made directly in the database survive restarts.
func (s *SQLiteStore) Seed(ctx context.Context) error {
	for _, q := range Builtin {
		checkpointsJSON, _ := json.Marshal(q.Checkpoints)
		hintsJSON, _ := json.Marshal(q.Hints)
		_, err := s.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO quizzes (id, title, scenario, checkpoints, hints, solution)
			VALUES (?, ?, ?, ?, ?, ?)
		`, q.ID, q.Title, q.Scenario, string(checkpointsJSON), string(hintsJSON), q.Solution)
		if err != nil {
			return fmt.Errorf("seeding quiz %s: %w", q.ID, err)
		}
	}
	return nil
}
