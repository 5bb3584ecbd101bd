package questionbank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbank-local/backend/internal/domain/questionbank"
)

func sampleBank() *questionbank.QuestionBank {
	return questionbank.New([]questionbank.Question{
		newQuestion("q0", "Net", "Easy"),
		newQuestion("q1", "Algo", "Hard"),
		newQuestion("q2", "Net", "Hard"),
		newQuestion("q3", "DB", "Easy"),
		newQuestion("q4", "Algo", "Easy"),
	})
}

func TestApply_EmptySpecKeepsEverything(t *testing.T) {
	bank := sampleBank()

	view := questionbank.Apply(bank, questionbank.FilterSpec{})

	assert.Len(t, view, bank.Len())
}

func TestApply_EveryResultMatches(t *testing.T) {
	bank := sampleBank()
	specs := []questionbank.FilterSpec{
		{Category: []string{"Net"}},
		{Difficulty: []string{"Easy"}},
		{Category: []string{"Algo", "DB"}, Difficulty: []string{"Easy"}},
		{Category: []string{"Missing"}},
	}

	for _, spec := range specs {
		view := questionbank.Apply(bank, spec)
		for _, q := range view {
			if len(spec.Category) > 0 {
				assert.Contains(t, spec.Category, q.Category)
			}
			if len(spec.Difficulty) > 0 {
				assert.Contains(t, spec.Difficulty, q.Difficulty)
			}
		}
	}
}

func TestApply_PreservesRelativeOrder(t *testing.T) {
	view := questionbank.Apply(sampleBank(), questionbank.FilterSpec{Difficulty: []string{"Easy"}})

	require.Len(t, view, 3)
	assert.Equal(t, "q0", view[0].Text)
	assert.Equal(t, "q3", view[1].Text)
	assert.Equal(t, "q4", view[2].Text)
}

func TestApply_ThreeQuestionScenario(t *testing.T) {
	bank := questionbank.New([]questionbank.Question{
		newQuestion("first", "A", "Easy"),
		newQuestion("second", "A", "Hard"),
		newQuestion("third", "B", "Easy"),
	})

	view := questionbank.Apply(bank, questionbank.FilterSpec{Category: []string{"A"}})

	require.Len(t, view, 2)
	assert.Equal(t, "first", view[0].Text)
	assert.Equal(t, "second", view[1].Text)
	for _, q := range view {
		assert.Equal(t, "A", q.Category)
	}
}

func TestApply_EmptyResultIsValid(t *testing.T) {
	view := questionbank.Apply(sampleBank(), questionbank.FilterSpec{Category: []string{"Nope"}})

	assert.NotNil(t, view)
	assert.Empty(t, view)
	assert.False(t, view.Has(0))
}

func TestApply_NilBank(t *testing.T) {
	assert.Empty(t, questionbank.Apply(nil, questionbank.FilterSpec{}))
}
