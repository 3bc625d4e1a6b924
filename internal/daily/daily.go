// Package daily owns the per-player daily quiz lifecycle: deterministic
// selection of today's quiz, persisted completion state and statistics, and
// hint-unlock gating. One logical progress record per player; concurrent
// writers are not coordinated (last write wins), which is acceptable for a
// single-player experience.
package daily

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNoProgress  = errors.New("no progress")
	ErrCompleted   = errors.New("quiz already completed")
	ErrNoMoreHints = errors.New("no more hints")
)

// Stats is the snapshot written when a day's quiz completes. Success
// distinguishes solving the quiz from giving up via reveal.
type Stats struct {
	MessageCount int       `json:"messageCount"`
	HintCount    int       `json:"hintCount"`
	DurationMs   int64     `json:"durationMs"`
	CompletedAt  time.Time `json:"completedAt"`
	Success      bool      `json:"success"`
}

// Progress is the persisted per-player record. QuizDay is the calendar date
// the record belongs to; a record for a different day is stale and gets
// discarded unconditionally before any session logic runs.
type Progress struct {
	QuizID        string
	QuizDay       string
	Completed     bool
	CompletedAt   time.Time
	HintsUnlocked int
	StartedAt     time.Time
	Stats         *Stats
}

type Store interface {
	Get(ctx context.Context, sessionID string) (Progress, error)
	Put(ctx context.Context, sessionID string, p Progress) error
	Delete(ctx context.Context, sessionID string) error
}

// QuizIDFor deterministically selects a quiz id for a date: the sum of the
// character codes of the local YYYY-MM-DD string, modulo the catalogue
// length. The exact formula is load-bearing — persisted progress was computed
// with it, so it must never change.
func QuizIDFor(t time.Time, catalogue []string) string {
	day := t.Format("2006-01-02")
	sum := 0
	for _, c := range []byte(day) {
		sum += int(c)
	}
	return catalogue[sum%len(catalogue)]
}

type Machine struct {
	store     Store
	catalogue []string
	now       func() time.Time
}

func NewMachine(store Store, catalogue []string) *Machine {
	return &Machine{store: store, catalogue: catalogue, now: time.Now}
}

// Current returns the authoritative progress for today, handling the day
// rollover: a persisted record for a different quiz day is discarded and a
// fresh in-progress record is started.
func (m *Machine) Current(ctx context.Context, sessionID string) (Progress, error) {
	now := m.now()
	today := now.Format("2006-01-02")
	quizID := QuizIDFor(now, m.catalogue)

	p, err := m.store.Get(ctx, sessionID)
	if errors.Is(err, ErrNoProgress) {
		return m.start(ctx, sessionID, quizID, today, now)
	}
	if err != nil {
		return Progress{}, err
	}

	if p.QuizDay != today {
		if err := m.store.Delete(ctx, sessionID); err != nil {
			return Progress{}, err
		}
		return m.start(ctx, sessionID, quizID, today, now)
	}
	return p, nil
}

func (m *Machine) start(ctx context.Context, sessionID, quizID, day string, now time.Time) (Progress, error) {
	p := Progress{
		QuizID:    quizID,
		QuizDay:   day,
		StartedAt: now,
	}
	if err := m.store.Put(ctx, sessionID, p); err != nil {
		return Progress{}, err
	}
	return p, nil
}

// MarkCompleted flips today's quiz to completed and writes the statistics
// snapshot. One-way for the rest of the day: a second call returns the
// already-persisted stats untouched. The message count comes from the caller
// because the transcript lives outside this package.
func (m *Machine) MarkCompleted(ctx context.Context, sessionID string, success bool, messageCount int) (Stats, error) {
	p, err := m.Current(ctx, sessionID)
	if err != nil {
		return Stats{}, err
	}
	if p.Completed {
		if p.Stats != nil {
			return *p.Stats, nil
		}
		return Stats{}, nil
	}

	now := m.now()
	st := Stats{
		MessageCount: messageCount,
		HintCount:    p.HintsUnlocked,
		DurationMs:   now.Sub(p.StartedAt).Milliseconds(),
		CompletedAt:  now,
		Success:      success,
	}
	p.Completed = true
	p.CompletedAt = now
	p.Stats = &st
	return st, m.store.Put(ctx, sessionID, p)
}

// UnlockHint advances the unlock count by one. Monotonic, capped at
// totalHints, and disabled once the quiz is completed. Returns the count
// after the call either way.
func (m *Machine) UnlockHint(ctx context.Context, sessionID string, totalHints int) (int, error) {
	p, err := m.Current(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if p.Completed {
		return p.HintsUnlocked, ErrCompleted
	}
	if p.HintsUnlocked >= totalHints {
		return p.HintsUnlocked, ErrNoMoreHints
	}

	p.HintsUnlocked++
	if err := m.store.Put(ctx, sessionID, p); err != nil {
		return p.HintsUnlocked - 1, err
	}
	return p.HintsUnlocked, nil
}

// ClearProgress wipes the player's record entirely.
func (m *Machine) ClearProgress(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}
