package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbank-local/backend/internal/domain/category"
	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
	"github.com/qbank-local/backend/internal/domain/questionbank"
)

func view(categories ...string) questionbank.FilteredView {
	v := make(questionbank.FilteredView, len(categories))
	for i, c := range categories {
		v[i] = questionbank.NewQuestion("q", []string{"a"}, "A", "", "", c, "")
	}
	return v
}

func TestSummarize_Accuracy(t *testing.T) {
	answers := map[int]practicesession.AnswerRecord{
		0: {Choice: "A", IsCorrect: true},
		1: {Choice: "B", IsCorrect: false},
		2: {Choice: "A", IsCorrect: true},
	}

	stats := category.Summarize(answers, view("X", "X", "X"))

	require.Contains(t, stats, "X")
	assert.Equal(t, category.Stats{Attempts: 3, Correct: 2, AccuracyPct: 66.7}, stats["X"])
}

func TestSummarize_RoundsHalfToEven(t *testing.T) {
	cases := []struct {
		correct, attempts int
		want              float64
	}{
		{1, 16, 6.2},
		{5, 16, 31.2},
		{9, 16, 56.2},
		{3, 16, 18.8},
		{1, 8, 12.5},
	}
	for _, tc := range cases {
		answers := make(map[int]practicesession.AnswerRecord, tc.attempts)
		categories := make([]string, tc.attempts)
		for i := range tc.attempts {
			answers[i] = practicesession.AnswerRecord{IsCorrect: i < tc.correct}
			categories[i] = "X"
		}

		stats := category.Summarize(answers, view(categories...))

		assert.Equal(t, tc.want, stats["X"].AccuracyPct, "%d/%d", tc.correct, tc.attempts)
	}
}

func TestSummarize_OmitsUnattemptedCategories(t *testing.T) {
	answers := map[int]practicesession.AnswerRecord{0: {IsCorrect: true}}

	stats := category.Summarize(answers, view("X", "Y"))

	assert.Len(t, stats, 1)
	assert.NotContains(t, stats, "Y")
	assert.Equal(t, 100.0, stats["X"].AccuracyPct)
}

func TestSummarize_SkipsStaleIndices(t *testing.T) {
	answers := map[int]practicesession.AnswerRecord{
		0:  {IsCorrect: false},
		5:  {IsCorrect: true},
		-1: {IsCorrect: true},
	}

	stats := category.Summarize(answers, view("X"))

	assert.Equal(t, category.Stats{Attempts: 1, Correct: 0, AccuracyPct: 0}, stats["X"])
}

func TestSorted_And_Overall(t *testing.T) {
	answers := map[int]practicesession.AnswerRecord{
		0: {IsCorrect: true},
		1: {IsCorrect: false},
		2: {IsCorrect: true},
	}
	stats := category.Summarize(answers, view("Net", "Algo", "Net"))

	rows := category.Sorted(stats)
	require.Len(t, rows, 2)
	assert.Equal(t, "Algo", rows[0].Category)
	assert.Equal(t, "Net", rows[1].Category)
	assert.Equal(t, 2, rows[1].Correct)

	total := category.Overall(stats)
	assert.Equal(t, 3, total.Attempts)
	assert.Equal(t, 2, total.Correct)
	assert.Equal(t, 66.7, total.AccuracyPct)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Empty(t, category.Summarize(nil, view("X")))
	assert.Equal(t, category.Stats{}, category.Overall(nil))
}
