// Package tui is a terminal player for the quiz service.
package tui

import (
	"context"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
	"github.com/qbank-local/backend/internal/service"
)

type screen int

const (
	screenQuestion screen = iota
	screenStats
)

type model struct {
	ctx  context.Context
	quiz *service.QuizService

	state    service.State
	selected string // letter highlighted but not submitted yet
	screen   screen
	err      error

	categories   []string
	difficulties []string
}

// New builds the player model. The quiz service must be started.
func New(ctx context.Context, quiz *service.QuizService) tea.Model {
	m := &model{ctx: ctx, quiz: quiz}
	m.refresh()
	return m
}

// Run starts the player on the terminal and blocks until the user quits.
func Run(ctx context.Context, quiz *service.QuizService) error {
	_, err := tea.NewProgram(New(ctx, quiz), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (m *model) refresh() {
	m.state = m.quiz.State()
	if bank, _, err := m.quiz.Bank(); err == nil {
		m.categories, m.difficulties = bank.Options()
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "t", "tab":
		if m.screen == screenStats {
			m.screen = screenQuestion
		} else {
			m.screen = screenStats
		}
		return m, nil
	case "esc":
		m.screen = screenQuestion
		return m, nil
	}

	if m.screen != screenQuestion {
		return m, nil
	}
	m.err = nil

	switch k := key.String(); k {
	case "a", "b", "c", "d", "e":
		letter := strings.ToUpper(k)
		if m.state.Current != nil && m.state.Current.Question.ChoiceText(letter) != "" {
			m.selected = letter
		}
	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		m.moveSelection(1)
	case "enter":
		if m.selected == "" {
			return m, nil
		}
		m.dispatch(practicesession.Submit{Choice: m.selected})
	case "n", "right", "l":
		m.dispatch(practicesession.Navigate{Delta: 1})
	case "p", "left", "h":
		m.dispatch(practicesession.Navigate{Delta: -1})
	case "f":
		if cur := m.state.Current; cur != nil {
			m.dispatch(practicesession.ToggleFlag{Index: cur.Index})
		}
	case "s":
		if cur := m.state.Current; cur != nil {
			m.dispatch(practicesession.ToggleFavorite{Index: cur.Index})
		}
	case "r":
		m.dispatch(practicesession.SetReviewMode{Enabled: !m.state.ReviewMode})
	case "x":
		if cur := m.state.Current; cur != nil {
			m.dispatch(practicesession.SetExplanation{Visible: !cur.ExplanationVisible})
		}
	case "C":
		cfg := m.state.Config
		cfg.Filter.Category = cycle(m.categories, cfg.Filter.Category)
		m.applyFilters(cfg)
	case "D":
		cfg := m.state.Config
		cfg.Filter.Difficulty = cycle(m.difficulties, cfg.Filter.Difficulty)
		m.applyFilters(cfg)
	case "S":
		cfg := m.state.Config
		cfg.Shuffle = !cfg.Shuffle
		m.applyFilters(cfg)
	case "R":
		m.dispatch(practicesession.Reset{})
	}
	return m, nil
}

func (m *model) dispatch(ev practicesession.Event) {
	before := m.state.Position
	st, err := m.quiz.Dispatch(m.ctx, ev)
	m.state, m.err = st, err
	if _, ok := ev.(practicesession.Navigate); ok && st.Position != before {
		m.selected = ""
	}
	if _, ok := ev.(practicesession.Reset); ok {
		m.selected = ""
	}
}

func (m *model) applyFilters(cfg practicesession.SessionConfig) {
	st, err := m.quiz.ApplyFilters(m.ctx, cfg)
	m.state, m.err = st, err
	m.selected = ""
}

// moveSelection steps the highlighted letter over the non-empty choices.
func (m *model) moveSelection(delta int) {
	cur := m.state.Current
	if cur == nil {
		return
	}
	var letters []string
	for _, c := range cur.Question.Choices {
		if c.Text != "" {
			letters = append(letters, c.Letter)
		}
	}
	if len(letters) == 0 {
		return
	}
	i := slices.Index(letters, m.selected)
	if i < 0 {
		if delta > 0 {
			m.selected = letters[0]
		} else {
			m.selected = letters[len(letters)-1]
		}
		return
	}
	m.selected = letters[min(max(i+delta, 0), len(letters)-1)]
}

// cycle steps a single-value filter through options: none, each option in
// turn, then none again.
func cycle(options, current []string) []string {
	if len(options) == 0 {
		return nil
	}
	if len(current) != 1 {
		return []string{options[0]}
	}
	i := slices.Index(options, current[0])
	if i < 0 || i == len(options)-1 {
		return nil
	}
	return []string{options[i+1]}
}

func filterLabel(values []string) string {
	if len(values) == 0 {
		return "all"
	}
	return strings.Join(values, ", ")
}
