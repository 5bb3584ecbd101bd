package practicesession

import (
	"math/rand/v2"
	"time"

	"github.com/qbank-local/backend/internal/domain/questionbank"
)

// SessionConfig holds the user choices a session is built from.
// Changing either field rebuilds the session.
type SessionConfig struct {
	Filter  questionbank.FilterSpec
	Shuffle bool
}

// DefaultConfig returns a config with no filters and shuffling enabled.
func DefaultConfig() SessionConfig {
	return SessionConfig{
		Filter:  questionbank.FilterSpec{},
		Shuffle: true,
	}
}

// Option customizes a Session at construction time.
type Option func(*Session)

// WithClock replaces time.Now for answer timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithShuffler replaces the permutation source. It must behave like rand.Shuffle.
func WithShuffler(shuffle func(n int, swap func(i, j int))) Option {
	return func(s *Session) { s.shuffle = shuffle }
}

func defaultShuffler(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}
