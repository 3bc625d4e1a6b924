package server

import (
	"context"
	"database/sql"

	"github.com/toadygame/turtlesoup/internal/engine"
)

type SQLiteTranscript struct {
	db *sql.DB
}

func NewSQLiteTranscript(db *sql.DB) *SQLiteTranscript {
	return &SQLiteTranscript{db: db}
}

func (s *SQLiteTranscript) Append(ctx context.Context, sessionID, quizID string, role engine.Role, content string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_log (session_id, quiz_id, role, content)
		VALUES (?, ?, ?, ?)
	`, sessionID, quizID, string(role), content)
	return err
}

func (s *SQLiteTranscript) CountPlayer(ctx context.Context, sessionID, quizID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM chat_log
		WHERE session_id = ? AND quiz_id = ? AND role = 'player'
	`, sessionID, quizID).Scan(&count)
	return count, err
}

// Recent returns the most recent limit turns in chronological order.
func (s *SQLiteTranscript) Recent(ctx context.Context, sessionID, quizID string, limit int) ([]engine.Turn, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT role, content FROM (
			SELECT id, role, content FROM chat_log
			WHERE session_id = ? AND quiz_id = ?
			ORDER BY id DESC LIMIT ?
		) ORDER BY id
	`, sessionID, quizID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []engine.Turn
	for rows.Next() {
		var role, content string
		if err := rows.Scan(&role, &content); err != nil {
			return nil, err
		}
		turns = append(turns, engine.Turn{Role: engine.Role(role), Content: content})
	}
	return turns, rows.Err()
}
