package grader

import "github.com/qbank-local/backend/internal/domain/questionbank"

// Grader decides whether a submitted choice letter answers a question.
// Implementations must be pure: the same inputs always grade the same way.
type Grader interface {
	Grade(q questionbank.Question, choice string) bool
}

// Letter grades by exact comparison against the normalized answer key.
// An answer key that names no choice can never be answered correctly
// except by submitting that same key.
type Letter struct{}

// Compile-time check: Letter satisfies the Grader interface.
var _ Grader = Letter{}

func (Letter) Grade(q questionbank.Question, choice string) bool {
	return choice != "" && choice == q.Correct
}
