package daily

import (
	"context"
	"testing"
	"time"

	"github.com/toadygame/turtlesoup/internal/database"
	"github.com/toadygame/turtlesoup/internal/migrations"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewSQLiteStore(db)
}

func TestSQLiteStoreMissing(t *testing.T) {
	store := setupStore(t)

	if _, err := store.Get(context.Background(), "nobody"); err != ErrNoProgress {
		t.Fatalf("expected ErrNoProgress, got %v", err)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	started := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	completed := started.Add(12 * time.Minute)
	in := Progress{
		QuizID:        "toady-003",
		QuizDay:       "2025-06-15",
		Completed:     true,
		CompletedAt:   completed,
		HintsUnlocked: 2,
		StartedAt:     started,
		Stats: &Stats{
			MessageCount: 9,
			HintCount:    2,
			DurationMs:   (12 * time.Minute).Milliseconds(),
			CompletedAt:  completed,
			Success:      true,
		},
	}

	if err := store.Put(ctx, "sess-1", in); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.QuizID != in.QuizID || got.QuizDay != in.QuizDay || got.HintsUnlocked != 2 || !got.Completed {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.StartedAt.Equal(started) || !got.CompletedAt.Equal(completed) {
		t.Errorf("timestamps mismatch: started %v completed %v", got.StartedAt, got.CompletedAt)
	}
	if got.Stats == nil || got.Stats.MessageCount != 9 || !got.Stats.Success {
		t.Errorf("stats mismatch: %+v", got.Stats)
	}
}

func TestSQLiteStoreInProgressRecord(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	in := Progress{
		QuizID:    "toady-001",
		QuizDay:   "2025-06-15",
		StartedAt: time.Now().UTC(),
	}
	if err := store.Put(ctx, "sess-1", in); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Completed || got.Stats != nil || !got.CompletedAt.IsZero() {
		t.Errorf("in-progress record gained completion state: %+v", got)
	}
}

func TestSQLiteStoreUpsert(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	base := Progress{QuizID: "toady-001", QuizDay: "2025-06-15", StartedAt: time.Now().UTC()}
	if err := store.Put(ctx, "sess-1", base); err != nil {
		t.Fatalf("put: %v", err)
	}

	base.HintsUnlocked = 2
	if err := store.Put(ctx, "sess-1", base); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, err := store.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.HintsUnlocked != 2 {
		t.Errorf("expected upsert to win, got %d hints", got.HintsUnlocked)
	}
}

func TestSQLiteStoreDelete(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "sess-1", Progress{QuizID: "toady-001", QuizDay: "2025-06-15", StartedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "sess-1"); err != ErrNoProgress {
		t.Fatalf("expected ErrNoProgress after delete, got %v", err)
	}

	// Deleting a missing record is not an error.
	if err := store.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}
