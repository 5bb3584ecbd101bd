package tui

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
	"github.com/qbank-local/backend/internal/service"
	"github.com/qbank-local/backend/internal/store"
)

func newModel(t *testing.T) *model {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	quiz := service.NewQuizService(
		store.NewJSONFile(filepath.Join(t.TempDir(), "progress.json")),
		service.NewBankLoader(1, logger),
		service.Source{Dir: filepath.Join(t.TempDir(), "questions")},
		practicesession.DefaultConfig(),
		logger,
		practicesession.WithShuffler(func(int, func(i, j int)) {}),
	)
	_, err := quiz.Start(ctx)
	require.NoError(t, err)
	return New(ctx, quiz).(*model)
}

func press(m *model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestModel_SelectAndSubmit(t *testing.T) {
	m := newModel(t)

	press(m, "enter")
	assert.Equal(t, 0, m.state.Progress.Answered, "enter without a selection does nothing")

	press(m, "b", "enter")

	require.NotNil(t, m.state.Current.Answer)
	assert.True(t, m.state.Current.Answer.IsCorrect)
	assert.Contains(t, m.View(), "Correct answer: B")
}

func TestModel_ArrowSelection(t *testing.T) {
	m := newModel(t)

	press(m, "down", "down")

	assert.Equal(t, "B", m.selected)
}

func TestModel_NavigateClearsSelection(t *testing.T) {
	m := newModel(t)

	press(m, "a", "n")

	assert.Equal(t, 1, m.state.Position)
	assert.Empty(t, m.selected)

	press(m, "p", "p")
	assert.Equal(t, 0, m.state.Position)
}

func TestModel_ReviewModeShowsError(t *testing.T) {
	m := newModel(t)

	press(m, "r", "a", "enter")

	assert.ErrorIs(t, m.err, practicesession.ErrReviewMode)
	assert.Contains(t, m.View(), "[review]")
}

func TestModel_CategoryCycle(t *testing.T) {
	m := newModel(t)

	press(m, "C")
	assert.Equal(t, []string{"Algorithms"}, m.state.Config.Filter.Category)
	assert.Equal(t, 3, m.state.Progress.Total)

	press(m, "C", "C", "C")
	assert.Empty(t, m.state.Config.Filter.Category)
	assert.Equal(t, 8, m.state.Progress.Total)
}

func TestModel_FlagAndStatsScreen(t *testing.T) {
	m := newModel(t)

	press(m, "f")
	assert.True(t, m.state.Current.Flagged)

	press(m, "t")
	assert.Contains(t, m.View(), "No answers yet.")
	press(m, "t", "a", "enter", "t")
	assert.Contains(t, m.View(), "Algorithms")
}

func TestCycle(t *testing.T) {
	opts := []string{"x", "y"}

	assert.Equal(t, []string{"x"}, cycle(opts, nil))
	assert.Equal(t, []string{"y"}, cycle(opts, []string{"x"}))
	assert.Nil(t, cycle(opts, []string{"y"}))
	assert.Equal(t, []string{"x"}, cycle(opts, []string{"x", "y"}))
	assert.Nil(t, cycle(nil, nil))
}
