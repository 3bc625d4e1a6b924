package daily

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, sessionID string) (Progress, error) {
	var p Progress
	var completed int
	var completedAt, statsJSON sql.NullString
	var startedAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT quiz_id, quiz_day, completed, completed_at, hints_unlocked, started_at, stats
		FROM quiz_progress WHERE session_id = ?
	`, sessionID).Scan(&p.QuizID, &p.QuizDay, &completed, &completedAt, &p.HintsUnlocked, &startedAt, &statsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNoProgress
	}
	if err != nil {
		return p, err
	}

	p.Completed = completed != 0
	if p.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
		return p, fmt.Errorf("parsing started_at: %w", err)
	}
	if completedAt.Valid {
		if p.CompletedAt, err = time.Parse(time.RFC3339Nano, completedAt.String); err != nil {
			return p, fmt.Errorf("parsing completed_at: %w", err)
		}
	}
	if statsJSON.Valid {
		var st Stats
		if err := json.Unmarshal([]byte(statsJSON.String), &st); err != nil {
			return p, fmt.Errorf("decoding stats: %w", err)
		}
		p.Stats = &st
	}
	return p, nil
}

func (s *SQLiteStore) Put(ctx context.Context, sessionID string, p Progress) error {
	completed := 0
	if p.Completed {
		completed = 1
	}
	var completedAt, statsJSON any
	if !p.CompletedAt.IsZero() {
		completedAt = p.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	if p.Stats != nil {
		b, err := json.Marshal(p.Stats)
		if err != nil {
			return err
		}
		statsJSON = string(b)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO quiz_progress (session_id, quiz_id, quiz_day, completed, completed_at, hints_unlocked, started_at, stats)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			quiz_id = excluded.quiz_id,
			quiz_day = excluded.quiz_day,
			completed = excluded.completed,
			completed_at = excluded.completed_at,
			hints_unlocked = excluded.hints_unlocked,
			started_at = excluded.started_at,
			stats = excluded.stats
	`, sessionID, p.QuizID, p.QuizDay, completed, completedAt, p.HintsUnlocked,
		p.StartedAt.UTC().Format(time.RFC3339Nano), statsJSON)
	return err
}

func (s *SQLiteStore) Delete(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM quiz_progress WHERE session_id = ?`, sessionID)
	return err
}
