// Package quiz holds the quiz catalogue: immutable quiz definitions loaded by
// id. Quizzes are seeded once and never mutated at runtime.
package quiz

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("quiz not found")

// Quiz is one hidden-scenario puzzle. Checkpoints are the facts the solution
// hinges on; the judge and checker grade against them. The solution is only
// ever shown to the player through an explicit reveal.
type Quiz struct {
	ID          string
	Title       string
	Scenario    string
	Checkpoints []string
	Hints       []string
	Solution    string
}

type Repository interface {
	Get(ctx context.Context, id string) (Quiz, error)
}
