package practicesession_test

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
	"github.com/qbank-local/backend/internal/domain/questionbank"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func createView(n int) questionbank.FilteredView {
	view := make(questionbank.FilteredView, n)
	for i := range view {
		category := "X"
		if i%2 == 1 {
			category = "Y"
		}
		view[i] = questionbank.NewQuestion(
			fmt.Sprintf("Question %d", i),
			[]string{"a", "b", "c", "d", "e"},
			"A", "explanation", "", category, "Easy",
		)
	}
	return view
}

func reverse(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func newSession(n int, shuffle bool) *practicesession.Session {
	return practicesession.New(createView(n),
		practicesession.SessionConfig{Shuffle: shuffle},
		practicesession.WithClock(func() time.Time { return fixedNow }),
	)
}

func TestNew_IdentityOrderWithoutShuffle(t *testing.T) {
	s := newSession(5, false)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, s.Order)
	assert.Equal(t, 0, s.Position)
	assert.Empty(t, s.Answers)
}

func TestRebuild_OrderIsPermutation(t *testing.T) {
	for _, shuffle := range []bool{true, false} {
		s := newSession(50, shuffle)
		for i := 0; i < 5; i++ {
			s.Rebuild(s.View)
			sorted := slices.Clone(s.Order)
			slices.Sort(sorted)
			for want, got := range sorted {
				require.Equal(t, want, got, "shuffle=%v", shuffle)
			}
		}
	}
}

func TestRebuild_ShuffleVariesAcrossRebuilds(t *testing.T) {
	s := newSession(20, true)
	first := slices.Clone(s.Order)

	// statistically almost certain with 20 questions
	differs := false
	for i := 0; i < 10 && !differs; i++ {
		s.Rebuild(s.View)
		differs = !slices.Equal(first, s.Order)
	}
	assert.True(t, differs, "expected shuffled order to change across rebuilds")
}

func TestRebuild_UsesInjectedShuffler(t *testing.T) {
	s := practicesession.New(createView(4), practicesession.SessionConfig{Shuffle: true},
		practicesession.WithShuffler(reverse))

	assert.Equal(t, []int{3, 2, 1, 0}, s.Order)
}

func TestRebuild_ClearsAnswersKeepsFlags(t *testing.T) {
	s := newSession(3, false)
	_, err := s.SubmitAnswer("A")
	require.NoError(t, err)
	_, err = s.ToggleFlag(1)
	require.NoError(t, err)
	_, err = s.ToggleFavorite(2)
	require.NoError(t, err)
	s.Advance(1)

	s.Rebuild(s.View)

	assert.Empty(t, s.Answers)
	assert.Equal(t, 0, s.Position)
	assert.False(t, s.ShowExplanation)
	assert.True(t, s.Flags.Has(1))
	assert.True(t, s.Favorites.Has(2))
}

func TestReset_ClearsFlagsAndFavorites(t *testing.T) {
	s := newSession(3, false)
	_, _ = s.ToggleFlag(0)
	_, _ = s.ToggleFavorite(0)

	s.Reset()

	assert.Empty(t, s.Flags)
	assert.Empty(t, s.Favorites)
}

func TestAdvance_Boundaries(t *testing.T) {
	s := newSession(3, false)

	assert.False(t, s.Advance(-1))
	assert.Equal(t, 0, s.Position)
	assert.False(t, s.CanGoBack())

	assert.True(t, s.Advance(1))
	assert.True(t, s.Advance(5))
	assert.Equal(t, 2, s.Position)
	assert.False(t, s.CanGoForward())

	assert.False(t, s.Advance(1))
	assert.Equal(t, 2, s.Position)
}

func TestAdvance_HidesExplanation(t *testing.T) {
	s := newSession(3, false)
	s.SetExplanation(true)

	s.Advance(1)

	assert.False(t, s.ShowExplanation)
}

func TestAdvance_BoundaryKeepsExplanation(t *testing.T) {
	s := newSession(3, false)
	s.SetExplanation(true)

	s.Advance(-1)

	assert.True(t, s.ShowExplanation)
}

func TestSubmitAnswer_RecordsAndGrades(t *testing.T) {
	s := newSession(3, false)

	rec, err := s.SubmitAnswer("a")

	require.NoError(t, err)
	assert.Equal(t, "A", rec.Choice)
	assert.True(t, rec.IsCorrect)
	assert.Equal(t, fixedNow, rec.Timestamp)
	assert.Equal(t, s.View[0].ID, rec.QuestionID)
	assert.True(t, s.ShowExplanation)
	assert.Equal(t, 1, s.Progress().Answered)
}

func TestSubmitAnswer_OverwritesPreviousAttempt(t *testing.T) {
	s := newSession(3, false)

	_, err := s.SubmitAnswer("A")
	require.NoError(t, err)
	_, err = s.SubmitAnswer("C")
	require.NoError(t, err)

	require.Len(t, s.Answers, 1)
	rec, ok := s.Answer(0)
	require.True(t, ok)
	assert.Equal(t, "C", rec.Choice)
	assert.False(t, rec.IsCorrect)
}

func TestSubmitAnswer_KeyedByViewIndex(t *testing.T) {
	s := practicesession.New(createView(3), practicesession.SessionConfig{Shuffle: true},
		practicesession.WithShuffler(reverse))

	_, err := s.SubmitAnswer("B")
	require.NoError(t, err)

	_, ok := s.Answer(2)
	assert.True(t, ok, "first presented question is view index 2")
}

func TestSubmitAnswer_ReviewModeGuard(t *testing.T) {
	s := newSession(3, false)
	_, err := s.SubmitAnswer("A")
	require.NoError(t, err)
	before := maps(s.Answers)

	s.SetReviewMode(true)
	_, err = s.SubmitAnswer("B")

	assert.ErrorIs(t, err, practicesession.ErrReviewMode)
	assert.Equal(t, before, maps(s.Answers))
	assert.True(t, s.ExplanationVisible())
}

func TestSubmitAnswer_InvalidChoice(t *testing.T) {
	s := newSession(3, false)

	_, err := s.SubmitAnswer("F")

	assert.ErrorIs(t, err, practicesession.ErrInvalidChoice)
	assert.Empty(t, s.Answers)
}

func TestSubmitAnswer_EmptyView(t *testing.T) {
	s := newSession(0, true)

	_, err := s.SubmitAnswer("A")

	assert.ErrorIs(t, err, practicesession.ErrEmptyView)
	assert.True(t, s.Empty())
	assert.False(t, s.Advance(1))
	_, _, ok := s.Current()
	assert.False(t, ok)
}

func TestToggleFlag_Symmetric(t *testing.T) {
	s := newSession(3, false)

	on, err := s.ToggleFlag(1)
	require.NoError(t, err)
	assert.True(t, on)

	on, err = s.ToggleFlag(1)
	require.NoError(t, err)
	assert.False(t, on)
	assert.Empty(t, s.Flags)
}

func TestToggle_OutOfRange(t *testing.T) {
	s := newSession(3, false)

	_, err := s.ToggleFlag(3)
	assert.ErrorIs(t, err, practicesession.ErrIndexOutOfRange)

	_, err = s.ToggleFavorite(-1)
	assert.ErrorIs(t, err, practicesession.ErrIndexOutOfRange)
}

func TestProgress(t *testing.T) {
	s := newSession(4, false)
	_, _ = s.SubmitAnswer("A")

	p := s.Progress()

	assert.Equal(t, 1, p.Answered)
	assert.Equal(t, 4, p.Total)
	assert.InDelta(t, 25.0, p.Percent, 0.001)
}

func maps(m map[int]practicesession.AnswerRecord) map[int]string {
	out := make(map[int]string, len(m))
	for k, v := range m {
		out[k] = v.Choice
	}
	return out
}
