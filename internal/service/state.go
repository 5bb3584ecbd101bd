package service

import (
	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
	"github.com/qbank-local/backend/internal/domain/questionbank"
)

// State is what an interaction layer needs to render the session.
type State struct {
	Loaded       bool
	Empty        bool // loaded, but the filters match nothing
	Config       practicesession.SessionConfig
	Position     int
	Progress     practicesession.Progress
	ReviewMode   bool
	CanGoBack    bool
	CanGoForward bool
	SaveError    string // last progress save failure, cleared by the next good save
	Current      *CurrentQuestion
}

// CurrentQuestion is the question under the cursor with its user marks.
type CurrentQuestion struct {
	Index              int // FilteredView index
	Number             int // 1-based position in presentation order
	Question           questionbank.Question
	Answer             *practicesession.AnswerRecord
	Flagged            bool
	Favorite           bool
	ExplanationVisible bool
}

func (qs *QuizService) state() State {
	s := qs.session
	if s == nil {
		return State{}
	}
	st := State{
		Loaded:       true,
		Empty:        s.Empty(),
		Config:       s.Config,
		Position:     s.Position,
		Progress:     s.Progress(),
		ReviewMode:   s.ReviewMode,
		CanGoBack:    s.CanGoBack(),
		CanGoForward: s.CanGoForward(),
	}
	if qs.saveErr != nil {
		st.SaveError = qs.saveErr.Error()
	}
	idx, q, ok := s.Current()
	if !ok {
		return st
	}
	cur := &CurrentQuestion{
		Index:              idx,
		Number:             s.Position + 1,
		Question:           q,
		Flagged:            s.Flags.Has(idx),
		Favorite:           s.Favorites.Has(idx),
		ExplanationVisible: s.ExplanationVisible(),
	}
	if rec, ok := s.Answer(idx); ok {
		cur.Answer = &rec
	}
	st.Current = cur
	return st
}
