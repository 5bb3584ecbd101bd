package practicesession

import (
	"slices"
	"time"

	"github.com/pkg/errors"

	"github.com/qbank-local/backend/internal/domain/questionbank"
	"github.com/qbank-local/backend/internal/grader"
)

var (
	ErrReviewMode      = errors.New("answering is disabled in review mode")
	ErrEmptyView       = errors.New("no questions match the current filters")
	ErrIndexOutOfRange = errors.New("question index out of range")
	ErrInvalidChoice   = errors.New("choice must be one of A, B, C, D, E")
)

// AnswerRecord is the latest response to one question.
type AnswerRecord struct {
	Choice     string
	IsCorrect  bool
	Timestamp  time.Time
	QuestionID string // fingerprint of the question when it was answered
}

// IndexSet is a set of FilteredView indices.
type IndexSet map[int]struct{}

func (s IndexSet) Has(idx int) bool {
	_, ok := s[idx]
	return ok
}

// Toggle flips membership and returns the new state.
func (s IndexSet) Toggle(idx int) bool {
	if s.Has(idx) {
		delete(s, idx)
		return false
	}
	s[idx] = struct{}{}
	return true
}

// Sorted returns the members in ascending order.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for idx := range s {
		out = append(out, idx)
	}
	slices.Sort(out)
	return out
}

// Session is the mutable quiz session over one FilteredView.
// Answers, flags and favorites are keyed by view index.
type Session struct {
	Config          SessionConfig
	View            questionbank.FilteredView
	Order           []int // presentation order, a permutation of view indices
	Position        int   // cursor into Order
	Answers         map[int]AnswerRecord
	Flags           IndexSet
	Favorites       IndexSet
	ReviewMode      bool
	ShowExplanation bool

	grader  grader.Grader
	shuffle func(n int, swap func(i, j int))
	now     func() time.Time
}

// New creates a session over view and builds its presentation order.
func New(view questionbank.FilteredView, config SessionConfig, opts ...Option) *Session {
	s := &Session{
		Config:    config,
		Flags:     IndexSet{},
		Favorites: IndexSet{},
		grader:    grader.Letter{},
		shuffle:   defaultShuffler,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Rebuild(view)
	return s
}

// Rebuild installs view and starts over: a fresh order, position 0, no
// answers, explanation hidden. Flags and favorites survive.
func (s *Session) Rebuild(view questionbank.FilteredView) {
	s.View = view
	s.Order = make([]int, len(view))
	for i := range s.Order {
		s.Order[i] = i
	}
	if s.Config.Shuffle {
		s.shuffle(len(s.Order), func(i, j int) {
			s.Order[i], s.Order[j] = s.Order[j], s.Order[i]
		})
	}
	s.Position = 0
	s.Answers = make(map[int]AnswerRecord)
	s.ShowExplanation = false
}

// Reconfigure applies a new config and rebuilds over view.
func (s *Session) Reconfigure(config SessionConfig, view questionbank.FilteredView) {
	s.Config = config
	s.Rebuild(view)
}

// Reset rebuilds the session and also clears flags and favorites.
func (s *Session) Reset() {
	s.Flags = IndexSet{}
	s.Favorites = IndexSet{}
	s.Rebuild(s.View)
}

// Empty reports whether there is nothing to present.
func (s *Session) Empty() bool {
	return len(s.Order) == 0
}

// Current returns the view index and question under the cursor.
func (s *Session) Current() (int, questionbank.Question, bool) {
	if s.Empty() || s.Position < 0 || s.Position >= len(s.Order) {
		return 0, questionbank.Question{}, false
	}
	idx := s.Order[s.Position]
	if !s.View.Has(idx) {
		return 0, questionbank.Question{}, false
	}
	return idx, s.View[idx], true
}

// Advance moves the cursor by delta, clamped to the order bounds. It never
// wraps. It returns false when the cursor did not move.
func (s *Session) Advance(delta int) bool {
	if s.Empty() {
		return false
	}
	target := min(max(s.Position+delta, 0), len(s.Order)-1)
	if target == s.Position {
		return false
	}
	s.Position = target
	s.ShowExplanation = false
	return true
}

// CanGoBack and CanGoForward tell the UI whether to enable navigation.
func (s *Session) CanGoBack() bool { return !s.Empty() && s.Position > 0 }

func (s *Session) CanGoForward() bool { return !s.Empty() && s.Position < len(s.Order)-1 }

// SubmitAnswer grades letter against the current question and records it,
// replacing any earlier answer to the same question.
func (s *Session) SubmitAnswer(letter string) (AnswerRecord, error) {
	if s.ReviewMode {
		return AnswerRecord{}, ErrReviewMode
	}
	idx, q, ok := s.Current()
	if !ok {
		return AnswerRecord{}, ErrEmptyView
	}
	choice := questionbank.NormalizeLetter(letter)
	if !slices.Contains(questionbank.Letters, choice) {
		return AnswerRecord{}, ErrInvalidChoice
	}

	rec := AnswerRecord{
		Choice:     choice,
		IsCorrect:  s.grader.Grade(q, choice),
		Timestamp:  s.now(),
		QuestionID: q.ID,
	}
	s.Answers[idx] = rec
	s.ShowExplanation = true
	return rec, nil
}

// Answer returns the recorded answer for a view index.
func (s *Session) Answer(idx int) (AnswerRecord, bool) {
	rec, ok := s.Answers[idx]
	return rec, ok
}

// ToggleFlag flips the flag on a view index and returns the new state.
func (s *Session) ToggleFlag(idx int) (bool, error) {
	if !s.View.Has(idx) {
		return false, ErrIndexOutOfRange
	}
	return s.Flags.Toggle(idx), nil
}

// ToggleFavorite flips the favorite mark on a view index and returns the new state.
func (s *Session) ToggleFavorite(idx int) (bool, error) {
	if !s.View.Has(idx) {
		return false, ErrIndexOutOfRange
	}
	return s.Favorites.Toggle(idx), nil
}

// SetReviewMode turns review mode on or off. Existing answers are untouched.
func (s *Session) SetReviewMode(enabled bool) {
	s.ReviewMode = enabled
}

// SetExplanation shows or hides the explanation of the current question.
func (s *Session) SetExplanation(visible bool) {
	s.ShowExplanation = visible
}

// ExplanationVisible is true when the explanation should be rendered.
func (s *Session) ExplanationVisible() bool {
	return s.ShowExplanation || s.ReviewMode
}

// Progress summarizes how much of the session has been answered.
type Progress struct {
	Answered int
	Total    int
	Percent  float64
}

func (s *Session) Progress() Progress {
	p := Progress{Answered: len(s.Answers), Total: len(s.Order)}
	if p.Total > 0 {
		p.Percent = float64(p.Answered) / float64(p.Total) * 100
	}
	return p
}
