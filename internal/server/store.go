package server

import (
	"context"

	"github.com/toadygame/turtlesoup/internal/engine"
)

// TranscriptStore is the append-only chat log. The turn pipeline never writes
// here itself; handlers do, after the reply is composed.
type TranscriptStore interface {
	Append(ctx context.Context, sessionID, quizID string, role engine.Role, content string) error
	CountPlayer(ctx context.Context, sessionID, quizID string) (int, error)
	Recent(ctx context.Context, sessionID, quizID string, limit int) ([]engine.Turn, error)
}
